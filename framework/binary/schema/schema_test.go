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

package schema_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	_ "github.com/iburinoc/binobj/framework/binary/any"
	"github.com/iburinoc/binobj/framework/binary/schema"
	"github.com/iburinoc/binobj/framework/binary/stream"
)

func prim(m schema.Method) *schema.Primitive { return &schema.Primitive{Method: m} }

func mixed() *binary.Entity {
	return &binary.Entity{
		Package:  "t",
		Identity: "Mixed",
		Fields: binary.FieldList{
			{Declared: "A", Type: prim(schema.Int8)},
			{Declared: "B", Type: &schema.Slice{ValueType: prim(schema.String)}},
			{Declared: "C", Type: &schema.Map{KeyType: prim(schema.Uint32), ValueType: prim(schema.Bool)}},
			{Declared: "D", Type: &schema.Pointer{Type: prim(schema.Float32)}},
			{Declared: "E", Type: &schema.Any{}},
			{Declared: "F", Type: &schema.Array{Size: 2, ValueType: prim(schema.Uint8)}},
			{Declared: "G", Type: &schema.Interface{}},
		},
	}
}

func TestParseMethod(t *testing.T) {
	ctx := log.Testing(t)
	for m := schema.Bool; m.Valid(); m++ {
		got, err := schema.ParseMethod(m.String())
		assert.For(ctx, "parse %v", m).ThatError(err).Succeeded()
		assert.For(ctx, "method %v", m).That(got).Equals(m)
	}
	got, err := schema.ParseMethod("INT8")
	assert.For(ctx, "case").ThatError(err).Succeeded()
	assert.For(ctx, "INT8").That(got).Equals(schema.Int8)
	_, err = schema.ParseMethod("int128")
	assert.For(ctx, "unknown").ThatError(err).Failed()
}

func TestSignature(t *testing.T) {
	ctx := log.Testing(t)
	e := mixed()
	assert.For(ctx, "signature").ThatString(e.Signature()).Equals(
		"t.Mixed{int8,[]string,map[uint32]bool,*float32,~,[2]uint8,?}")
	assert.For(ctx, "string").ThatString(e.String()).Equals(
		"t.Mixed{A int8,B []string,C map[uint32]bool,D *float32,E <any>,F [2]uint8,G <interface>}")
	assert.For(ctx, "find").That(e.Fields.Find("F")).Equals(5)
	assert.For(ctx, "missing").That(e.Fields.Find("Z")).Equals(-1)
}

func populated(class *schema.ObjectClass) *schema.Object {
	return class.New().(*schema.Object).
		SetField("A", int8(-3)).
		SetField("B", []interface{}{"x", "y"}).
		SetField("C", map[interface{}]interface{}{uint32(2): true, uint32(1): false}).
		SetField("D", float32(1.5)).
		SetField("E", "boxed").
		SetField("F", []interface{}{uint8(1), uint8(2)})
}

func TestObjectRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	class := schema.NewClass(mixed())
	obj := populated(class)

	for _, cfg := range []stream.Config{{}, {Codec: stream.VLE}} {
		ctx := log.V{"codec": cfg.Codec}.Bind(ctx)
		buf := &bytes.Buffer{}
		assert.For(ctx, "encode").ThatError(stream.EncodeStruct(buf, cfg, obj)).Succeeded()
		got, err := stream.DecodeStruct(buf, cfg, class)
		assert.For(ctx, "decode").ThatError(err).Succeeded()
		assert.For(ctx, "fields").That(got.(*schema.Object).Fields).DeepEquals(obj.Fields)
		e, _ := got.(*schema.Object).Field("E")
		assert.For(ctx, "any").That(e).Equals("boxed")
	}
}

func TestMapOrder(t *testing.T) {
	ctx := log.Testing(t)
	class := schema.NewClass(&binary.Entity{
		Package:  "t",
		Identity: "M",
		Fields: binary.FieldList{
			{Declared: "M", Type: &schema.Map{KeyType: prim(schema.Uint32), ValueType: prim(schema.Bool)}},
		},
	})
	obj := class.New().(*schema.Object).SetField("M", map[interface{}]interface{}{
		uint32(2): true,
		uint32(1): false,
	})
	data := &bytes.Buffer{}
	assert.For(ctx, "encode").ThatError(stream.EncodeStruct(data, stream.Config{}, obj)).Succeeded()
	assert.For(ctx, "bytes").ThatSlice(data.Bytes()).Equals([]byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x01,
	})
}

func TestTypeMismatch(t *testing.T) {
	ctx := log.Testing(t)
	class := schema.NewClass(mixed())
	for _, test := range []struct {
		field string
		value interface{}
	}{
		{"A", "not an int8"},
		{"A", int16(1)},
		{"B", []string{"typed"}},
		{"C", map[uint32]bool{}},
		{"F", []interface{}{uint8(1)}},
		{"G", "not an object"},
	} {
		obj := populated(class).SetField(test.field, test.value)
		err := stream.EncodeStruct(&bytes.Buffer{}, stream.Config{}, obj)
		_, ok := errors.Cause(err).(binary.ErrTypeMismatch)
		assert.For(ctx, "%s=%#v", test.field, test.value).ThatBoolean(ok).IsTrue()
	}
}

func TestSetFieldPanics(t *testing.T) {
	ctx := log.Testing(t)
	defer func() {
		assert.For(ctx, "recovered").That(recover()).IsNotNil()
	}()
	schema.NewClass(mixed()).New().(*schema.Object).SetField("Z", 1)
}

func TestEmptyElements(t *testing.T) {
	ctx := log.Testing(t)
	empty := &schema.Struct{Entity: &binary.Entity{Package: "t", Identity: "Empty"}}
	none := &schema.Array{Size: 0, ValueType: prim(schema.Int64)}
	forged := []byte{0x00, 0x00, 0x00, 0x01}
	for _, typ := range []binary.Type{
		&schema.Slice{ValueType: empty},
		&schema.Slice{ValueType: none},
		&schema.Slice{ValueType: &schema.Array{Size: 4, ValueType: empty}},
		&schema.Map{KeyType: none, ValueType: empty},
		&schema.Array{Size: 1 << 24, ValueType: empty},
	} {
		d := stream.NewDecoder(bytes.NewReader(forged), stream.Config{})
		got := typ.DecodeValue(d)
		assert.For(ctx, "%v", typ).ThatError(d.Error()).Failed()
		assert.For(ctx, "%v value", typ).That(got).IsNil()
	}

	d := stream.NewDecoder(bytes.NewReader(forged), stream.Config{})
	got := (&schema.Map{KeyType: prim(schema.Uint32), ValueType: empty}).DecodeValue(d)
	assert.For(ctx, "sized keys").ThatError(d.Error()).Failed()
	assert.For(ctx, "sized keys value").That(got).IsNil()

	d = stream.NewDecoder(bytes.NewReader([]byte{0x03, 0x00, 0x00, 0x00}), stream.Config{})
	got = (&schema.Slice{ValueType: none}).DecodeValue(d)
	assert.For(ctx, "small").ThatError(d.Error()).Succeeded()
	assert.For(ctx, "small value").That(got).DeepEquals(
		[]interface{}{[]interface{}{}, []interface{}{}, []interface{}{}})
}
