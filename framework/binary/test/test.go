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

// Package test holds hand written classes and byte exact fixtures for
// testing encoders and decoders.
package test

import (
	"context"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

type TypeA struct {
	Data string
}

type TypeB struct {
	Data string
}

type TypeC struct {
	Data Simple
}

type Simple int8

func (s *Simple) ReadSimple(r pod.Reader) { *s = Simple(r.Int8()) }
func (s Simple) WriteSimple(w pod.Writer) { w.Int8(int8(s)) }

func (o *TypeA) Class() binary.Class { return classTypeA }
func (o *TypeB) Class() binary.Class { return classTypeB }
func (o *TypeC) Class() binary.Class { return classTypeC }

func (o *TypeA) GetData() string { return o.Data }
func (o *TypeA) SetData(v string) *TypeA {
	o.Data = v
	return o
}

func (o *TypeB) GetData() string { return o.Data }
func (o *TypeB) SetData(v string) *TypeB {
	o.Data = v
	return o
}

func (o *TypeC) GetData() Simple { return o.Data }
func (o *TypeC) SetData(v Simple) *TypeC {
	o.Data = v
	return o
}

var stringType = &schema.Primitive{Name: "string", Method: schema.String}

var (
	classTypeA = &class[TypeA, *TypeA]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "TypeA",
			Fields:   binary.FieldList{{Declared: "Data", Type: stringType}},
		},
		create: func() binary.Object { return &TypeA{} },
		encode: func(e binary.Encoder, o *TypeA) { e.String(o.Data) },
		decode: func(d binary.Decoder, o *TypeA) { o.Data = d.String() },
	}
	classTypeB = &class[TypeB, *TypeB]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "TypeB",
			Fields:   binary.FieldList{{Declared: "Data", Type: stringType}},
		},
		create: func() binary.Object { return &TypeB{} },
		encode: func(e binary.Encoder, o *TypeB) { e.String(o.Data) },
		decode: func(d binary.Decoder, o *TypeB) { o.Data = d.String() },
	}
	classTypeC = &class[TypeC, *TypeC]{
		entity: &binary.Entity{
			Package:  "test",
			Identity: "TypeC",
			Fields: binary.FieldList{{
				Declared: "Data",
				Type:     &schema.Primitive{Name: "Simple", Method: schema.Int8},
			}},
		},
		create: func() binary.Object { return &TypeC{} },
		encode: func(e binary.Encoder, o *TypeC) { o.Data.WriteSimple(e) },
		decode: func(d binary.Decoder, o *TypeC) { o.Data.ReadSimple(d) },
	}
)

// Fixtures in the vle codec.
var (
	ObjectA = &TypeA{Data: "ObjectA"}
	EntityA = []byte{
		0x04, 't', 'e', 's', 't', // Package
		0x05, 'T', 'y', 'p', 'e', 'A', // Identity
		0x00, // Version
		0x01, // field count
		0xb0, // primitive string
	}
	EntityAFull = []byte{
		0x04, 't', 'e', 's', 't', // Package
		0x05, 'T', 'y', 'p', 'e', 'A', // Identity
		0x00,                               // Version
		0x00,                               // Display
		0x01,                               // field count
		0xb0,                               // primitive string
		0x06, 's', 't', 'r', 'i', 'n', 'g', // Name
		0x04, 'D', 'a', 't', 'a', // Declared
	}
	ObjectB = &TypeB{Data: "ObjectB"}
	EntityB = []byte{
		0x04, 't', 'e', 's', 't', // Package
		0x05, 'T', 'y', 'p', 'e', 'B', // Identity
		0x00, // Version
		0x01, // field count
		0xb0, // primitive string
	}
	ObjectC = &TypeC{Data: Simple(3)}
	EntityC = []byte{
		0x04, 't', 'e', 's', 't', // Package
		0x05, 'T', 'y', 'p', 'e', 'C', // Identity
		0x00, // Version
		0x01, // field count
		0x10, // primitive int8
	}
)

// Entry is a named set of values and the bytes they encode to.
type Entry struct {
	Name   string
	Values []binary.Object
	Data   []byte
}

// VerifyData asserts that got holds exactly the bytes of entry.
func VerifyData(ctx context.Context, entry Entry, got []byte) bool {
	return assert.For(ctx, "%v data", entry.Name).ThatSlice(got).Equals(entry.Data)
}

func init() {
	for _, c := range []binary.Class{classTypeA, classTypeB, classTypeC} {
		Namespace.MustAdd(c)
	}
}
