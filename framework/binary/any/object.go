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
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

// ObjectBox holds a polymorphic object, encoded with its type discriminator.
type ObjectBox struct {
	Value binary.Object
}

// ObjectSlice holds a slice of polymorphic objects.
type ObjectSlice struct {
	Value []binary.Object
}

// Class returns the class registered for any.object_.
func (*ObjectBox) Class() binary.Class { return objectClass }

// SetValue sets the boxed object and returns b.
func (b *ObjectBox) SetValue(v binary.Object) *ObjectBox {
	b.Value = v
	return b
}

// Unbox returns the boxed object.
func (b *ObjectBox) Unbox() interface{} { return b.Value }

// Class returns the class registered for any.objectSlice.
func (*ObjectSlice) Class() binary.Class { return objectSliceClass }

// SetValue sets the boxed objects and returns b.
func (b *ObjectSlice) SetValue(v []binary.Object) *ObjectSlice {
	b.Value = v
	return b
}

// Unbox returns the boxed objects.
func (b *ObjectSlice) Unbox() interface{} { return b.Value }

type objectBoxClass struct{ entity *binary.Entity }

var objectClass = &objectBoxClass{entity(
	"object_", &schema.Interface{Name: "binary.Object"},
)}

func (c *objectBoxClass) Schema() *binary.Entity { return c.entity }
func (c *objectBoxClass) New() binary.Object     { return &ObjectBox{} }

func (c *objectBoxClass) Encode(e binary.Encoder, obj binary.Object) {
	if b, ok := obj.(*ObjectBox); ok && b != nil {
		e.Variant(b.Value)
	} else {
		e.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
	}
}

func (c *objectBoxClass) DecodeTo(d binary.Decoder, obj binary.Object) {
	if b, ok := obj.(*ObjectBox); ok && b != nil {
		b.Value = d.Variant()
	} else {
		d.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
	}
}

type objectSliceBoxClass struct{ entity *binary.Entity }

var objectSliceClass = &objectSliceBoxClass{entity(
	"objectSlice", &schema.Slice{ValueType: &schema.Interface{Name: "binary.Object"}},
)}

func (c *objectSliceBoxClass) Schema() *binary.Entity { return c.entity }
func (c *objectSliceBoxClass) New() binary.Object     { return &ObjectSlice{} }

func (c *objectSliceBoxClass) Encode(e binary.Encoder, obj binary.Object) {
	b, ok := obj.(*ObjectSlice)
	if !ok || b == nil {
		e.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	e.Uint32(uint32(len(b.Value)))
	for _, o := range b.Value {
		e.Variant(o)
	}
}

func (c *objectSliceBoxClass) DecodeTo(d binary.Decoder, obj binary.Object) {
	b, ok := obj.(*ObjectSlice)
	if !ok || b == nil {
		d.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	count := d.Count()
	if d.Error() != nil {
		return
	}
	v := make([]binary.Object, 0, min(count, maxPrealloc))
	for i := uint32(0); i < count; i++ {
		o := d.Variant()
		if d.Error() != nil {
			return
		}
		v = append(v, o)
	}
	b.Value = v
}
