// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package any

import (
	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/framework/binary"
)

// SliceBox holds a slice of scalar values as a binary.Object.
type SliceBox[T Scalar] struct {
	Value []T
}

type (
	BoolSlice    = SliceBox[bool]
	Int8Slice    = SliceBox[int8]
	Uint8Slice   = SliceBox[uint8]
	Int16Slice   = SliceBox[int16]
	Uint16Slice  = SliceBox[uint16]
	Int32Slice   = SliceBox[int32]
	Uint32Slice  = SliceBox[uint32]
	Int64Slice   = SliceBox[int64]
	Uint64Slice  = SliceBox[uint64]
	Float32Slice = SliceBox[float32]
	Float64Slice = SliceBox[float64]
	StringSlice  = SliceBox[string]
	BytesSlice   = SliceBox[[]byte]
	IDSlice      = SliceBox[id.ID]
)

// NewSlice returns a box holding v.
func NewSlice[T Scalar](v ...T) *SliceBox[T] { return &SliceBox[T]{Value: v} }

// Class returns the class registered for slice boxes of T.
func (*SliceBox[T]) Class() binary.Class { return classes[T]().slice }

// GetValue returns the boxed slice.
func (b *SliceBox[T]) GetValue() []T { return b.Value }

// SetValue sets the boxed slice and returns b.
func (b *SliceBox[T]) SetValue(v []T) *SliceBox[T] {
	b.Value = v
	return b
}

// Unbox returns the boxed slice.
func (b *SliceBox[T]) Unbox() interface{} { return b.Value }

// maxPrealloc caps the capacity reserved from a count read off the stream.
const maxPrealloc = 1024

type sliceClass[T Scalar] struct {
	entity *binary.Entity
	elem   binary.Type
}

func (c *sliceClass[T]) Schema() *binary.Entity { return c.entity }
func (c *sliceClass[T]) New() binary.Object     { return &SliceBox[T]{} }

func (c *sliceClass[T]) Encode(e binary.Encoder, obj binary.Object) {
	b, ok := obj.(*SliceBox[T])
	if !ok || b == nil {
		e.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	e.Uint32(uint32(len(b.Value)))
	for _, v := range b.Value {
		c.elem.EncodeValue(e, v)
	}
}

func (c *sliceClass[T]) DecodeTo(d binary.Decoder, obj binary.Object) {
	b, ok := obj.(*SliceBox[T])
	if !ok || b == nil {
		d.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	count := d.Count()
	if d.Error() != nil {
		return
	}
	v := make([]T, 0, min(count, maxPrealloc))
	for i := uint32(0); i < count; i++ {
		e := c.elem.DecodeValue(d)
		if d.Error() != nil {
			return
		}
		v = append(v, e.(T))
	}
	b.Value = v
}
