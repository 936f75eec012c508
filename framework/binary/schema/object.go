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

package schema

import (
	"fmt"
	"strings"

	"github.com/iburinoc/binobj/framework/binary"
)

// ObjectClass is a binary.Class whose encoding and decoding walk the field
// list of its Entity. It serves any type known only by its schema, such as
// the types declared by a capture file.
type ObjectClass struct {
	entity *binary.Entity
}

// NewClass returns the class for instances of the entity e.
func NewClass(e *binary.Entity) *ObjectClass {
	return &ObjectClass{entity: e}
}

// Schema returns the entity the class was built from.
func (c *ObjectClass) Schema() *binary.Entity { return c.entity }

// New returns an Object with every field set to nil.
func (c *ObjectClass) New() binary.Object {
	return &Object{Type: c, Fields: make([]interface{}, len(c.entity.Fields))}
}

// Encode writes the fields of obj in declaration order.
func (c *ObjectClass) Encode(e binary.Encoder, obj binary.Object) {
	o, ok := obj.(*Object)
	if !ok || o == nil || len(o.Fields) != len(c.entity.Fields) {
		e.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	for i, f := range c.entity.Fields {
		f.Type.EncodeValue(e, o.Fields[i])
		if e.Error() != nil {
			return
		}
	}
}

// DecodeTo reads the fields of obj in declaration order.
func (c *ObjectClass) DecodeTo(d binary.Decoder, obj binary.Object) {
	o, ok := obj.(*Object)
	if !ok || o == nil {
		d.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	if len(o.Fields) != len(c.entity.Fields) {
		o.Fields = make([]interface{}, len(c.entity.Fields))
	}
	for i, f := range c.entity.Fields {
		o.Fields[i] = f.Type.DecodeValue(d)
		if d.Error() != nil {
			return
		}
	}
}

// Object is an instance of an ObjectClass.
type Object struct {
	Type   *ObjectClass
	Fields []interface{}
}

// Class implements binary.Object using the schema system to do the encoding and
// decoding of fields.
func (o *Object) Class() binary.Class {
	return o.Type
}

// Field returns the value of the field with the given name, and whether the
// field exists.
func (o *Object) Field(name string) (interface{}, bool) {
	i := o.Type.entity.Fields.Find(name)
	if i < 0 || i >= len(o.Fields) {
		return nil, false
	}
	return o.Fields[i], true
}

// SetField sets the value of the field with the given name and returns o.
// It panics if the entity has no such field.
func (o *Object) SetField(name string, value interface{}) *Object {
	i := o.Type.entity.Fields.Find(name)
	if i < 0 {
		panic(fmt.Errorf("%s has no field %q", o.Type.entity.Key(), name))
	}
	o.Fields[i] = value
	return o
}

// Unbox returns the value of the single field named Value, so objects decoded
// from a box schema unbox like the box itself.
// It returns nil for any other shape.
func (o *Object) Unbox() interface{} {
	if len(o.Fields) == 1 && o.Type.entity.Fields[0].Name() == "Value" {
		return o.Fields[0]
	}
	return nil
}

func (o *Object) String() string {
	params := make([]string, len(o.Type.entity.Fields))
	for i, f := range o.Type.entity.Fields {
		var v interface{}
		if i < len(o.Fields) {
			v = o.Fields[i]
		}
		params[i] = fmt.Sprintf("%v: %v", f.Name(), v)
	}
	return fmt.Sprintf("%s{%v}", o.Type.entity.Name(), strings.Join(params, ", "))
}
