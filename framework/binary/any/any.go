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

// Package any contains Object wrappers for Plain-Old-Data types.
//
// Every scalar kind has a box registered under the entity any.<kind>_, such
// as any.int8_, holding a single field named Value. Slices of each kind are
// boxed under any.<kind>Slice.
package any

import (
	"strings"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

// Scalar is the set of Go types that have a box.
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		float32 | float64 | string | []byte | id.ID
}

// Box holds a single scalar value as a binary.Object.
type Box[T Scalar] struct {
	Value T
}

type (
	Bool    = Box[bool]
	Int8    = Box[int8]
	Uint8   = Box[uint8]
	Int16   = Box[int16]
	Uint16  = Box[uint16]
	Int32   = Box[int32]
	Uint32  = Box[uint32]
	Int64   = Box[int64]
	Uint64  = Box[uint64]
	Float32 = Box[float32]
	Float64 = Box[float64]
	String  = Box[string]
	Bytes   = Box[[]byte]
	ID      = Box[id.ID]
)

// New returns a box holding v.
func New[T Scalar](v T) *Box[T] { return &Box[T]{Value: v} }

// Class returns the class registered for boxes of T.
func (*Box[T]) Class() binary.Class { return classes[T]().box }

// GetValue returns the boxed value.
func (b *Box[T]) GetValue() T { return b.Value }

// SetValue sets the boxed value and returns b.
func (b *Box[T]) SetValue(v T) *Box[T] {
	b.Value = v
	return b
}

// Unbox returns the boxed value.
func (b *Box[T]) Unbox() interface{} { return b.Value }

type boxClass[T Scalar] struct {
	entity *binary.Entity
	field  binary.Type
}

func (c *boxClass[T]) Schema() *binary.Entity { return c.entity }
func (c *boxClass[T]) New() binary.Object     { return &Box[T]{} }

func (c *boxClass[T]) Encode(e binary.Encoder, obj binary.Object) {
	b, ok := obj.(*Box[T])
	if !ok || b == nil {
		e.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	c.field.EncodeValue(e, b.Value)
}

func (c *boxClass[T]) DecodeTo(d binary.Decoder, obj binary.Object) {
	b, ok := obj.(*Box[T])
	if !ok || b == nil {
		d.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	v := c.field.DecodeValue(d)
	if d.Error() != nil {
		return
	}
	b.Value = v.(T)
}

// pair holds the box and slice box classes of one scalar kind.
type pair[T Scalar] struct {
	box   *boxClass[T]
	slice *sliceClass[T]
}

func newPair[T Scalar](name string, method schema.Method) *pair[T] {
	elem := &schema.Primitive{Name: strings.ToLower(method.String()), Method: method}
	return &pair[T]{
		box: &boxClass[T]{
			entity: entity(name+"_", elem),
			field:  elem,
		},
		slice: &sliceClass[T]{
			entity: entity(name+"Slice", &schema.Slice{ValueType: elem}),
			elem:   elem,
		},
	}
}

func entity(identity string, t binary.Type) *binary.Entity {
	return &binary.Entity{
		Package:  "any",
		Identity: identity,
		Fields:   binary.FieldList{{Declared: "Value", Type: t}},
	}
}

var (
	boolClasses    = newPair[bool]("bool", schema.Bool)
	int8Classes    = newPair[int8]("int8", schema.Int8)
	uint8Classes   = newPair[uint8]("uint8", schema.Uint8)
	int16Classes   = newPair[int16]("int16", schema.Int16)
	uint16Classes  = newPair[uint16]("uint16", schema.Uint16)
	int32Classes   = newPair[int32]("int32", schema.Int32)
	uint32Classes  = newPair[uint32]("uint32", schema.Uint32)
	int64Classes   = newPair[int64]("int64", schema.Int64)
	uint64Classes  = newPair[uint64]("uint64", schema.Uint64)
	float32Classes = newPair[float32]("float32", schema.Float32)
	float64Classes = newPair[float64]("float64", schema.Float64)
	stringClasses  = newPair[string]("string", schema.String)
	bytesClasses   = newPair[[]byte]("bytes", schema.Bytes)
	idClasses      = newPair[id.ID]("id", schema.ID)
)

// classes returns the class pair for T.
func classes[T Scalar]() *pair[T] {
	var zero T
	var p interface{}
	switch interface{}(zero).(type) {
	case bool:
		p = boolClasses
	case int8:
		p = int8Classes
	case uint8:
		p = uint8Classes
	case int16:
		p = int16Classes
	case uint16:
		p = uint16Classes
	case int32:
		p = int32Classes
	case uint32:
		p = uint32Classes
	case int64:
		p = int64Classes
	case uint64:
		p = uint64Classes
	case float32:
		p = float32Classes
	case float64:
		p = float64Classes
	case string:
		p = stringClasses
	case []byte:
		p = bytesClasses
	case id.ID:
		p = idClasses
	}
	return p.(*pair[T])
}
