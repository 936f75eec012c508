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

package stream_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/data/endian"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/metrics"
	"github.com/iburinoc/binobj/framework/binary/registry"
	"github.com/iburinoc/binobj/framework/binary/schema"
	"github.com/iburinoc/binobj/framework/binary/stream"
	"github.com/iburinoc/binobj/framework/binary/test"
)

var configs = []stream.Config{
	{Codec: stream.Fixed, Discriminator: stream.ByHash, Namespace: test.Namespace},
	{Codec: stream.Fixed, Discriminator: stream.ByName, Namespace: test.Namespace},
	{Codec: stream.Fixed, ByteOrder: endian.Big, Discriminator: stream.ByHash, Namespace: test.Namespace},
	{Codec: stream.VLE, Discriminator: stream.ByHash, Namespace: test.Namespace},
	{Codec: stream.VLE, Discriminator: stream.ByName, Namespace: test.Namespace},
}

func bind(ctx context.Context, cfg stream.Config) context.Context {
	order := "little"
	if cfg.ByteOrder == endian.Big {
		order = "big"
	}
	return log.V{"codec": cfg.Codec, "discriminator": cfg.Discriminator, "order": order}.Bind(ctx)
}

func values() []binary.Object {
	return []binary.Object{
		test.ObjectA,
		test.ObjectB,
		test.ObjectC,
		(&test.TypeA{}).SetData(""),
		&test.Leaf{A: 0xffffffff},
		&test.Contains{LeafField: test.Leaf{A: 7}},
		&test.Slice{},
		&test.Slice{Leaves: []test.Leaf{{A: 1}, {A: 2}, {A: 3}}},
		&test.MapValue{M: map[uint32]test.Leaf{3: {A: 30}, 1: {A: 10}, 2: {A: 20}}},
		&test.Holder{},
		&test.Holder{Value: test.ObjectB},
		&test.Holder{Value: &test.Holder{Value: &test.Leaf{A: 1}}},
		&test.Linked{Value: 1, Next: &test.Linked{Value: 2, Next: &test.Linked{Value: 3}}},
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	for _, cfg := range configs {
		ctx := bind(ctx, cfg)
		for _, v := range values() {
			data, err := stream.Marshal(cfg, v)
			assert.For(ctx, "marshal %v", v).ThatError(err).Succeeded()
			got, err := stream.Unmarshal(data, cfg)
			assert.For(ctx, "unmarshal %v", v).ThatError(err).Succeeded()
			assert.For(ctx, "round trip %v", v).That(got).DeepEquals(v)

			buf := &bytes.Buffer{}
			err = stream.EncodeStruct(buf, cfg, v)
			assert.For(ctx, "encode struct %v", v).ThatError(err).Succeeded()
			got, err = stream.DecodeStruct(buf, cfg, v.Class())
			assert.For(ctx, "decode struct %v", v).ThatError(err).Succeeded()
			assert.For(ctx, "struct round trip %v", v).That(got).DeepEquals(v)
		}
	}
}

func TestNil(t *testing.T) {
	ctx := log.Testing(t)
	for _, cfg := range configs {
		ctx := bind(ctx, cfg)
		data, err := stream.Marshal(cfg, nil)
		assert.For(ctx, "marshal").ThatError(err).Succeeded()
		got, err := stream.Unmarshal(data, cfg)
		assert.For(ctx, "unmarshal").ThatError(err).Succeeded()
		assert.For(ctx, "nil").That(got).IsNil()
	}
}

func TestDiscriminator(t *testing.T) {
	ctx := log.Testing(t)
	a := &test.Holder{Value: (&test.TypeA{}).SetData("same")}
	b := &test.Holder{Value: (&test.TypeB{}).SetData("same")}
	for _, cfg := range configs {
		ctx := bind(ctx, cfg)
		dataA, _ := stream.Marshal(cfg, a)
		dataB, _ := stream.Marshal(cfg, b)
		assert.For(ctx, "distinct bytes").That(bytes.Equal(dataA, dataB)).Equals(false)
		gotA, err := stream.Unmarshal(dataA, cfg)
		assert.For(ctx, "decode a").ThatError(err).Succeeded()
		gotB, err := stream.Unmarshal(dataB, cfg)
		assert.For(ctx, "decode b").ThatError(err).Succeeded()
		_, isA := gotA.(*test.Holder).Value.(*test.TypeA)
		_, isB := gotB.(*test.Holder).Value.(*test.TypeB)
		assert.For(ctx, "a is TypeA").ThatBoolean(isA).IsTrue()
		assert.For(ctx, "b is TypeB").ThatBoolean(isB).IsTrue()
	}
}

func TestUnknownType(t *testing.T) {
	ctx := log.Testing(t)
	for _, cfg := range configs {
		ctx := bind(ctx, cfg)
		data, err := stream.Marshal(cfg, &test.Holder{Value: test.ObjectA})
		assert.For(ctx, "marshal").ThatError(err).Succeeded()
		empty := cfg
		empty.Namespace = registry.NewNamespace()
		got, err := stream.Unmarshal(data, empty)
		_, unknown := err.(binary.ErrUnknownType)
		assert.For(ctx, "unknown").ThatBoolean(unknown).IsTrue()
		assert.For(ctx, "object").That(got).IsNil()

		// The outer type is known, the nested one is not.
		partial := cfg
		partial.Namespace = registry.NewNamespace()
		holder, _ := test.Namespace.Lookup("test.Holder")
		partial.Namespace.MustAdd(holder)
		got, err = stream.Unmarshal(data, partial)
		_, unknown = err.(binary.ErrUnknownType)
		assert.For(ctx, "nested unknown").ThatBoolean(unknown).IsTrue()
		assert.For(ctx, "nested object").That(got).IsNil()
	}
}

func TestTruncated(t *testing.T) {
	ctx := log.Testing(t)
	for _, cfg := range configs {
		ctx := bind(ctx, cfg)
		for _, v := range append(values(), nil) {
			data, err := stream.Marshal(cfg, v)
			assert.For(ctx, "marshal %v", v).ThatError(err).Succeeded()
			for i := 0; i < len(data); i++ {
				got, err := stream.Unmarshal(data[:i], cfg)
				assert.For(ctx, "%v truncated to %d", v, i).ThatError(err).HasCause(pod.ErrTruncated)
				assert.For(ctx, "%v truncated object", v).That(got).IsNil()
			}
		}
	}
}

func TestEmpty(t *testing.T) {
	ctx := log.Testing(t)
	for _, cfg := range configs {
		ctx := bind(ctx, cfg)
		got, err := stream.Decode(&bytes.Buffer{}, cfg)
		assert.For(ctx, "variant").ThatError(err).HasCause(pod.ErrTruncated)
		assert.For(ctx, "variant object").That(got).IsNil()
		got, err = stream.DecodeStruct(&bytes.Buffer{}, cfg, test.ObjectC.Class())
		assert.For(ctx, "struct").ThatError(err).HasCause(pod.ErrTruncated)
		assert.For(ctx, "struct object").That(got).IsNil()
	}
}

func TestTrailing(t *testing.T) {
	ctx := log.Testing(t)
	cfg := configs[0]
	data, _ := stream.Marshal(cfg, test.ObjectA)
	got, err := stream.Unmarshal(append(data, 0), cfg)
	assert.For(ctx, "trailing").ThatError(err).Failed()
	assert.For(ctx, "object").That(got).IsNil()
}

func TestFieldOrder(t *testing.T) {
	ctx := log.Testing(t)
	int32Type := &schema.Primitive{Name: "int32", Method: schema.Int32}
	stringType := &schema.Primitive{Name: "string", Method: schema.String}
	ab := schema.NewClass(&binary.Entity{
		Package: "order", Identity: "X",
		Fields: binary.FieldList{{Declared: "A", Type: int32Type}, {Declared: "B", Type: stringType}},
	})
	ba := schema.NewClass(&binary.Entity{
		Package: "order", Identity: "X",
		Fields: binary.FieldList{{Declared: "B", Type: stringType}, {Declared: "A", Type: int32Type}},
	})
	assert.For(ctx, "same key").ThatString(ab.Schema().Key()).Equals(ba.Schema().Key())
	assert.For(ctx, "signature").ThatString(ab.Schema().Signature()).NotEquals(string(ba.Schema().Signature()))

	cfg := stream.Config{}
	objAB := ab.New().(*schema.Object).SetField("A", int32(1)).SetField("B", "x")
	objBA := ba.New().(*schema.Object).SetField("A", int32(1)).SetField("B", "x")
	dataAB := &bytes.Buffer{}
	dataBA := &bytes.Buffer{}
	assert.For(ctx, "encode ab").ThatError(stream.EncodeStruct(dataAB, cfg, objAB)).Succeeded()
	assert.For(ctx, "encode ba").ThatError(stream.EncodeStruct(dataBA, cfg, objBA)).Succeeded()
	assert.For(ctx, "ab bytes").ThatSlice(dataAB.Bytes()).Equals([]byte{
		0x01, 0x00, 0x00, 0x00, // A
		0x01, 0x00, 0x00, 0x00, 'x', // B
	})
	assert.For(ctx, "ba bytes").ThatSlice(dataBA.Bytes()).Equals([]byte{
		0x01, 0x00, 0x00, 0x00, 'x', // B
		0x01, 0x00, 0x00, 0x00, // A
	})

	got, err := stream.DecodeStruct(bytes.NewReader(dataAB.Bytes()), cfg, ba)
	assert.For(ctx, "misread").ThatError(err).Succeeded()
	a, _ := got.(*schema.Object).Field("A")
	b, _ := got.(*schema.Object).Field("B")
	assert.For(ctx, "misread A").That(a).Equals(int32(0x78000000))
	assert.For(ctx, "misread B").That(b).Equals("\x01")
}

func TestSwappedFields(t *testing.T) {
	ctx := log.Testing(t)
	int32Type := &schema.Primitive{Name: "int32", Method: schema.Int32}
	ab := schema.NewClass(&binary.Entity{
		Package: "order", Identity: "Pair",
		Fields: binary.FieldList{{Declared: "A", Type: int32Type}, {Declared: "B", Type: int32Type}},
	})
	ba := schema.NewClass(&binary.Entity{
		Package: "order", Identity: "Pair",
		Fields: binary.FieldList{{Declared: "B", Type: int32Type}, {Declared: "A", Type: int32Type}},
	})
	assert.For(ctx, "same signature").ThatString(ab.Schema().Signature()).Equals(string(ba.Schema().Signature()))

	for _, cfg := range []stream.Config{{}, {Codec: stream.VLE}} {
		data := &bytes.Buffer{}
		obj := ab.New().(*schema.Object).SetField("A", int32(1)).SetField("B", int32(2))
		assert.For(ctx, "%v encode", cfg.Codec).ThatError(stream.EncodeStruct(data, cfg, obj)).Succeeded()
		got, err := stream.DecodeStruct(data, cfg, ba)
		assert.For(ctx, "%v decode", cfg.Codec).ThatError(err).Succeeded()
		a, _ := got.(*schema.Object).Field("A")
		b, _ := got.(*schema.Object).Field("B")
		assert.For(ctx, "%v A", cfg.Codec).That(a).Equals(int32(2))
		assert.For(ctx, "%v B", cfg.Codec).That(b).Equals(int32(1))
	}
}

func TestEntity(t *testing.T) {
	ctx := log.Testing(t)
	cfg := stream.Config{Codec: stream.VLE, Namespace: test.Namespace}
	for _, mode := range []binary.Mode{binary.Compact, binary.Full} {
		cfg.Mode = mode
		expect := test.Entry{Name: "EntityA " + mode.String(), Data: test.EntityA}
		if mode == binary.Full {
			expect.Data = test.EntityAFull
		}
		buf := &bytes.Buffer{}
		e := stream.NewEncoder(buf, cfg)
		e.Entity(test.ObjectA.Class().Schema())
		assert.For(ctx, "encode %v", mode).ThatError(e.Error()).Succeeded()
		test.VerifyData(ctx, expect, buf.Bytes())

		d := stream.NewDecoder(buf, cfg)
		got := d.Entity()
		assert.For(ctx, "decode %v", mode).ThatError(d.Error()).Succeeded()
		assert.For(ctx, "signature %v", mode).ThatString(got.Signature()).Equals(string(test.ObjectA.Class().Schema().Signature()))
		if mode == binary.Full {
			assert.For(ctx, "field name").ThatString(got.Fields[0].Declared).Equals("Data")
		}
	}
	for _, c := range []struct {
		obj  binary.Object
		data []byte
	}{{test.ObjectB, test.EntityB}, {test.ObjectC, test.EntityC}} {
		buf := &bytes.Buffer{}
		e := stream.NewEncoder(buf, stream.Config{Codec: stream.VLE, Mode: binary.Compact})
		e.Entity(c.obj.Class().Schema())
		test.VerifyData(ctx, test.Entry{Name: c.obj.Class().Schema().Key(), Data: c.data}, buf.Bytes())
	}
}

func TestSelfReferencingEntity(t *testing.T) {
	ctx := log.Testing(t)
	cfg := stream.Config{Namespace: registry.NewNamespace()}
	buf := &bytes.Buffer{}
	schemaLinked := (&test.Linked{}).Class().Schema()
	e := stream.NewEncoder(buf, cfg)
	e.Entity(schemaLinked)
	d := stream.NewDecoder(buf, cfg)
	got := d.Entity()
	assert.For(ctx, "decode").ThatError(d.Error()).Succeeded()
	assert.For(ctx, "signature").ThatString(got.Signature()).Equals(string(schemaLinked.Signature()))
	next := got.Fields[1].Type.(*schema.Pointer).Type.(*schema.Struct)
	assert.For(ctx, "self").That(next.Entity).Equals(got)
}

func TestDynamic(t *testing.T) {
	ctx := log.Testing(t)
	cfg := stream.Config{Discriminator: stream.ByName, Namespace: test.Namespace}
	data, err := stream.Marshal(cfg, &test.Holder{Value: &test.Contains{LeafField: test.Leaf{A: 5}}})
	assert.For(ctx, "marshal").ThatError(err).Succeeded()

	dynamic := registry.NewNamespace()
	for _, key := range []string{"test.Holder", "test.Contains", "test.Leaf"} {
		class, _ := test.Namespace.Lookup(key)
		dynamic.MustAdd(schema.NewClass(class.Schema()))
	}
	cfg.Namespace = dynamic
	got, err := stream.Unmarshal(data, cfg)
	assert.For(ctx, "unmarshal").ThatError(err).Succeeded()
	holder := got.(*schema.Object)
	value, _ := holder.Field("Value")
	contains := value.(*schema.Object)
	leaf, _ := contains.Field("LeafField")
	a, _ := leaf.(*schema.Object).Field("A")
	assert.For(ctx, "leaf").That(a).Equals(uint32(5))

	again, err := stream.Marshal(cfg, got)
	assert.For(ctx, "re-marshal").ThatError(err).Succeeded()
	assert.For(ctx, "same bytes").ThatSlice(again).Equals(data)
}

func TestOnClass(t *testing.T) {
	ctx := log.Testing(t)
	seen := []string{}
	e := stream.NewEncoder(&bytes.Buffer{}, stream.Config{})
	e.OnClass = func(c binary.Class) { seen = append(seen, c.Schema().Key()) }
	e.Variant(&test.Holder{Value: &test.Holder{Value: &test.Contains{}}})
	e.Variant(&test.Leaf{})
	assert.For(ctx, "err").ThatError(e.Error()).Succeeded()
	assert.For(ctx, "classes").ThatSlice(seen).Equals([]string{"test.Holder", "test.Contains", "test.Leaf"})
}

func linked(n int) *test.Linked {
	head := &test.Linked{}
	for i := 1; i < n; i++ {
		head = &test.Linked{Value: uint32(i), Next: head}
	}
	return head
}

func TestDepth(t *testing.T) {
	ctx := log.Testing(t)
	cfg := stream.Config{Namespace: test.Namespace}

	data, err := stream.Marshal(cfg, linked(200))
	assert.For(ctx, "marshal shallow").ThatError(err).Succeeded()
	got, err := stream.Unmarshal(data, cfg)
	assert.For(ctx, "unmarshal shallow").ThatError(err).Succeeded()
	assert.For(ctx, "shallow").That(got).DeepEquals(linked(200))

	data, err = stream.Marshal(cfg, linked(1000))
	assert.For(ctx, "marshal deep").ThatError(err).HasMessage("Object nesting deeper than 256")
	assert.For(ctx, "deep data").That(data).IsNil()

	cycle := &test.Linked{Value: 1}
	cycle.Next = cycle
	_, err = stream.Marshal(cfg, cycle)
	assert.For(ctx, "marshal cycle").ThatError(err).Failed()

	// Link one more node onto the innermost one by hand.
	data, err = stream.Marshal(cfg, linked(256))
	assert.For(ctx, "marshal at limit").ThatError(err).Succeeded()
	_, err = stream.Unmarshal(data, cfg)
	assert.For(ctx, "unmarshal at limit").ThatError(err).Succeeded()
	deeper := append(data[:len(data)-1:len(data)-1], 1, 0, 0, 0, 0, 0)
	got, err = stream.Unmarshal(deeper, cfg)
	assert.For(ctx, "unmarshal too deep").ThatError(err).HasMessage("Object nesting deeper than 256")
	assert.For(ctx, "too deep").That(got).IsNil()
}

func TestMismatch(t *testing.T) {
	ctx := log.Testing(t)
	e := stream.NewEncoder(&bytes.Buffer{}, stream.Config{})
	test.ObjectA.Class().Encode(e, test.ObjectB)
	_, ok := e.Error().(binary.ErrTypeMismatch)
	assert.For(ctx, "mismatch").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "stops").ThatError(stream.EncodeStruct(&bytes.Buffer{}, stream.Config{}, nil)).Failed()
}

func TestParse(t *testing.T) {
	ctx := log.Testing(t)
	c, err := stream.ParseCodec("VLE")
	assert.For(ctx, "vle").ThatError(err).Succeeded()
	assert.For(ctx, "vle codec").That(c).Equals(stream.VLE)
	_, err = stream.ParseCodec("zip")
	assert.For(ctx, "bad codec").ThatError(err).Failed()
	d, err := stream.ParseDiscriminator("name")
	assert.For(ctx, "name").ThatError(err).Succeeded()
	assert.For(ctx, "name discriminator").That(d).Equals(stream.ByName)
	_, err = stream.ParseDiscriminator("guess")
	assert.For(ctx, "bad discriminator").ThatError(err).Failed()
}

func TestDecodeMetrics(t *testing.T) {
	ctx := log.Testing(t)
	cfg := stream.Config{Namespace: test.Namespace}
	unknown := func() float64 { return testutil.ToFloat64(metrics.Default.UnknownTypes) }
	decoded := func() float64 { return testutil.ToFloat64(metrics.Default.ObjectsDecoded) }
	other := func() float64 {
		return testutil.ToFloat64(metrics.Default.DecodeErrors.WithLabelValues(metrics.KindOther))
	}

	before := unknown()
	_, err := registry.NewNamespace().Lookup("test.Nothing")
	assert.For(ctx, "lookup").ThatError(err).Failed()
	assert.For(ctx, "lookup miss").That(unknown()).Equals(before)

	data, err := stream.Marshal(cfg, test.ObjectA)
	assert.For(ctx, "marshal").ThatError(err).Succeeded()
	_, err = stream.Unmarshal(data, stream.Config{Namespace: registry.NewNamespace()})
	assert.For(ctx, "unknown").ThatError(err).Failed()
	assert.For(ctx, "unknown count").That(unknown()).Equals(before + 1)

	decodedBefore, otherBefore := decoded(), other()
	_, err = stream.Unmarshal(append(data[:len(data):len(data)], 0), cfg)
	assert.For(ctx, "trailing").ThatError(err).Failed()
	assert.For(ctx, "trailing decoded").That(decoded()).Equals(decodedBefore)
	assert.For(ctx, "trailing errors").That(other()).Equals(otherBefore + 1)

	_, err = stream.Unmarshal(data, cfg)
	assert.For(ctx, "whole").ThatError(err).Succeeded()
	assert.For(ctx, "whole decoded").That(decoded()).Equals(decodedBefore + 1)
}
