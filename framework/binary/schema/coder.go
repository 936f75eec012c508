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

	"github.com/iburinoc/binobj/framework/binary"
)

// TypeTag denotes the schema type that follows.
// Each tag corresponds to an implementation of the Type interface.
// Primitive tags carry the Method in their upper four bits.
type TypeTag uint8

const (
	PrimitiveTag TypeTag = iota
	StructTag
	PointerTag
	InterfaceTag
	AnyTag
	SliceTag
	ArrayTag
	MapTag
)

// maxTypeDepth bounds the nesting of pointer, slice, array and map types read
// from a stream.
const maxTypeDepth = 64

// EncodeType writes the binary form of t.
// Struct types are written as a reference to their entity, never inline.
func EncodeType(e binary.Encoder, t binary.Type) {
	full := e.GetMode() != binary.Compact
	switch t := t.(type) {
	case *Primitive:
		e.Uint8(uint8(PrimitiveTag) | (uint8(t.Method) << 4))
		if full {
			e.String(t.Name)
		}
	case *Struct:
		e.Uint8(uint8(StructTag))
		e.String(t.Entity.Key())
	case *Pointer:
		e.Uint8(uint8(PointerTag))
		EncodeType(e, t.Type)
	case *Interface:
		e.Uint8(uint8(InterfaceTag))
		if full {
			e.String(t.Name)
		}
	case *Any:
		e.Uint8(uint8(AnyTag))
	case *Slice:
		e.Uint8(uint8(SliceTag))
		EncodeType(e, t.ValueType)
		if full {
			e.String(t.Alias)
		}
	case *Array:
		e.Uint8(uint8(ArrayTag))
		e.Uint32(t.Size)
		EncodeType(e, t.ValueType)
		if full {
			e.String(t.Alias)
		}
	case *Map:
		e.Uint8(uint8(MapTag))
		EncodeType(e, t.KeyType)
		EncodeType(e, t.ValueType)
		if full {
			e.String(t.Alias)
		}
	default:
		e.SetError(fmt.Errorf("Encode unknown type %T", t))
	}
}

// DecodeType reads a type written by EncodeType.
// Struct references are resolved with resolve, which is given the entity key
// and returns the entity or nil if it is not known.
func DecodeType(d binary.Decoder, resolve func(key string) *binary.Entity) binary.Type {
	return decodeType(d, resolve, 0)
}

func decodeType(d binary.Decoder, resolve func(string) *binary.Entity, depth int) binary.Type {
	if depth > maxTypeDepth {
		d.SetError(fmt.Errorf("Type nesting deeper than %d", maxTypeDepth))
		return nil
	}
	full := d.GetMode() != binary.Compact
	tag := TypeTag(d.Uint8())
	if d.Error() != nil {
		return nil
	}
	var out binary.Type
	switch tag & 0xf {
	case PrimitiveTag:
		t := &Primitive{Method: Method(tag >> 4)}
		if !t.Method.Valid() {
			d.SetError(fmt.Errorf("Decode unknown primitive method %v", t.Method))
			return nil
		}
		if full {
			t.Name = d.String()
		}
		out = t
	case StructTag:
		key := d.String()
		if d.Error() != nil {
			return nil
		}
		entity := resolve(key)
		if entity == nil {
			d.SetError(binary.ErrUnknownType{Key: key})
			return nil
		}
		out = &Struct{Entity: entity}
	case PointerTag:
		out = &Pointer{Type: decodeType(d, resolve, depth+1)}
	case InterfaceTag:
		t := &Interface{}
		if full {
			t.Name = d.String()
		}
		out = t
	case AnyTag:
		out = &Any{}
	case SliceTag:
		t := &Slice{ValueType: decodeType(d, resolve, depth+1)}
		if full {
			t.Alias = d.String()
		}
		out = t
	case ArrayTag:
		t := &Array{Size: d.Uint32()}
		t.ValueType = decodeType(d, resolve, depth+1)
		if full {
			t.Alias = d.String()
		}
		out = t
	case MapTag:
		t := &Map{KeyType: decodeType(d, resolve, depth+1)}
		t.ValueType = decodeType(d, resolve, depth+1)
		if full {
			t.Alias = d.String()
		}
		out = t
	default:
		d.SetError(fmt.Errorf("Decode unknown type tag %#x", uint8(tag)))
		return nil
	}
	if d.Error() != nil {
		return nil
	}
	return out
}

// EncodeEntity writes the binary form of c.
func EncodeEntity(e binary.Encoder, c *binary.Entity) {
	full := e.GetMode() != binary.Compact
	e.String(c.Package)
	e.String(c.Identity)
	e.String(c.Version)
	if full {
		e.String(c.Display)
	}
	e.Uint32(uint32(len(c.Fields)))
	for _, f := range c.Fields {
		EncodeType(e, f.Type)
		if full {
			e.String(f.Declared)
		}
	}
}

// DecodeEntity reads an entity written by EncodeEntity into c.
// Struct field types are resolved with resolve, see DecodeType.
func DecodeEntity(d binary.Decoder, c *binary.Entity, resolve func(key string) *binary.Entity) {
	full := d.GetMode() != binary.Compact
	c.Package = d.String()
	c.Identity = d.String()
	c.Version = d.String()
	if full {
		c.Display = d.String()
	}
	count := d.Count()
	if d.Error() != nil {
		return
	}
	c.Fields = make(binary.FieldList, 0, prealloc(count))
	for i := uint32(0); i < count; i++ {
		f := binary.Field{Type: DecodeType(d, resolve)}
		if full {
			f.Declared = d.String()
		}
		if d.Error() != nil {
			c.Fields = nil
			return
		}
		c.Fields = append(c.Fields, f)
	}
}
