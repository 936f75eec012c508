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

package test

import (
	"slices"

	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

type Leaf struct {
	A uint32
}

type Contains struct {
	LeafField Leaf
}

type Slice struct {
	Leaves []Leaf
}

type MapValue struct {
	M map[uint32]Leaf
}

// Holder holds any object, written with its discriminator.
type Holder struct {
	Value binary.Object
}

// Linked is a list whose type refers to itself.
type Linked struct {
	Value uint32
	Next  *Linked
}

func (o *Leaf) Class() binary.Class     { return classLeaf }
func (o *Contains) Class() binary.Class { return classContains }
func (o *Slice) Class() binary.Class    { return classSlice }
func (o *MapValue) Class() binary.Class { return classMapValue }
func (o *Holder) Class() binary.Class   { return classHolder }
func (o *Linked) Class() binary.Class   { return classLinked }

var (
	uint32Type = &schema.Primitive{Name: "uint32", Method: schema.Uint32}

	entityLeaf = &binary.Entity{
		Package:  "test",
		Identity: "Leaf",
		Fields:   binary.FieldList{{Declared: "A", Type: uint32Type}},
	}
	entityLinked = &binary.Entity{Package: "test", Identity: "Linked"}

	classLeaf = &class[Leaf, *Leaf]{
		entity: entityLeaf,
		create: func() binary.Object { return &Leaf{} },
		encode: func(e binary.Encoder, o *Leaf) { e.Uint32(o.A) },
		decode: func(d binary.Decoder, o *Leaf) { o.A = d.Uint32() },
	}
	classContains = &class[Contains, *Contains]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "Contains",
			Fields: binary.FieldList{
				{Declared: "LeafField", Type: &schema.Struct{Entity: entityLeaf}},
			},
		},
		create: func() binary.Object { return &Contains{} },
		encode: func(e binary.Encoder, o *Contains) { e.Struct(&o.LeafField) },
		decode: func(d binary.Decoder, o *Contains) { d.Struct(&o.LeafField) },
	}
	classSlice = &class[Slice, *Slice]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "Slice",
			Fields: binary.FieldList{
				{Declared: "Leaves", Type: &schema.Slice{ValueType: &schema.Struct{Entity: entityLeaf}}},
			},
		},
		create: func() binary.Object { return &Slice{} },
		encode: func(e binary.Encoder, o *Slice) {
			e.Uint32(uint32(len(o.Leaves)))
			for i := range o.Leaves {
				e.Struct(&o.Leaves[i])
			}
		},
		decode: func(d binary.Decoder, o *Slice) {
			count := d.Count()
			o.Leaves = nil
			for i := uint32(0); i < count && d.Error() == nil; i++ {
				l := Leaf{}
				d.Struct(&l)
				o.Leaves = append(o.Leaves, l)
			}
		},
	}
	classMapValue = &class[MapValue, *MapValue]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "MapValue",
			Fields: binary.FieldList{{
				Declared: "M",
				Type:     &schema.Map{KeyType: uint32Type, ValueType: &schema.Struct{Entity: entityLeaf}},
			}},
		},
		create: func() binary.Object { return &MapValue{} },
		encode: func(e binary.Encoder, o *MapValue) {
			keys := make([]uint32, 0, len(o.M))
			for k := range o.M {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			e.Uint32(uint32(len(keys)))
			for _, k := range keys {
				v := o.M[k]
				e.Uint32(k)
				e.Struct(&v)
			}
		},
		decode: func(d binary.Decoder, o *MapValue) {
			count := d.Count()
			o.M = map[uint32]Leaf{}
			for i := uint32(0); i < count && d.Error() == nil; i++ {
				k := d.Uint32()
				v := Leaf{}
				d.Struct(&v)
				o.M[k] = v
			}
		},
	}
	classHolder = &class[Holder, *Holder]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "Holder",
			Fields: binary.FieldList{
				{Declared: "Value", Type: &schema.Interface{Name: "binary.Object"}},
			},
		},
		create: func() binary.Object { return &Holder{} },
		encode: func(e binary.Encoder, o *Holder) { e.Variant(o.Value) },
		decode: func(d binary.Decoder, o *Holder) { o.Value = d.Variant() },
	}
	classLinked = &class[Linked, *Linked]{
		entity: entityLinked,
		create: func() binary.Object { return &Linked{} },
		encode: func(e binary.Encoder, o *Linked) {
			e.Uint32(o.Value)
			e.Bool(o.Next != nil)
			if o.Next != nil {
				e.Struct(o.Next)
			}
		},
		decode: func(d binary.Decoder, o *Linked) {
			o.Value = d.Uint32()
			if d.Bool() {
				o.Next = &Linked{}
				d.Struct(o.Next)
			}
		},
	}
)

func init() {
	entityLinked.Fields = binary.FieldList{
		{Declared: "Value", Type: uint32Type},
		{Declared: "Next", Type: &schema.Pointer{Type: &schema.Struct{Entity: entityLinked}}},
	}
	for _, c := range []binary.Class{
		classLeaf, classContains, classSlice, classMapValue, classHolder, classLinked,
	} {
		Namespace.MustAdd(c)
	}
}
