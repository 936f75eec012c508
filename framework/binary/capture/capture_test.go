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

package capture_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/any"
	"github.com/iburinoc/binobj/framework/binary/capture"
	"github.com/iburinoc/binobj/framework/binary/schema"
	"github.com/iburinoc/binobj/framework/binary/stream"
	"github.com/iburinoc/binobj/framework/binary/test"
)

func objects() []binary.Object {
	return []binary.Object{
		test.ObjectA,
		&test.Contains{LeafField: test.Leaf{A: 1}},
		nil,
		&test.Holder{Value: test.ObjectC},
		any.New(int8(127)),
		&test.Linked{Value: 1, Next: &test.Linked{Value: 2}},
		test.ObjectA,
	}
}

func write(ctx context.Context, opts capture.Options, objs []binary.Object) []byte {
	buf := &bytes.Buffer{}
	w, err := capture.NewWriter(ctx, buf, opts)
	assert.For(ctx, "new writer").ThatError(err).Succeeded()
	for _, o := range objs {
		assert.For(ctx, "write %v", o).ThatError(w.Write(o)).Succeeded()
	}
	assert.For(ctx, "close").ThatError(w.Close()).Succeeded()
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	for _, opts := range []capture.Options{
		{},
		{Compress: true},
		{Config: stream.Config{Codec: stream.VLE, Discriminator: stream.ByName}},
		{Config: stream.Config{Codec: stream.VLE}, Compress: true},
	} {
		ctx := log.V{"compress": opts.Compress, "codec": opts.Config.Codec}.Bind(ctx)
		data := write(ctx, opts, objects())
		assert.For(ctx, "magic").ThatString(data[:4]).Equals(capture.Magic)
		got, entities, err := capture.ReadAll(ctx, bytes.NewReader(data), capture.ReaderOptions{Fallback: test.Namespace})
		assert.For(ctx, "read").ThatError(err).Succeeded()
		assert.For(ctx, "objects").That(got).DeepEquals(objects())
		keys := make([]string, len(entities))
		for i, e := range entities {
			keys[i] = e.Key()
		}
		assert.For(ctx, "entities").ThatSlice(keys).Equals([]string{
			"test.TypeA", "test.Leaf", "test.Contains", "test.Holder", "test.TypeC", "any.int8_", "test.Linked",
		})
	}
}

func TestCompressed(t *testing.T) {
	ctx := log.Testing(t)
	many := []binary.Object{}
	for i := 0; i < 200; i++ {
		many = append(many, test.ObjectA)
	}
	plain := write(ctx, capture.Options{}, many)
	packed := write(ctx, capture.Options{Compress: true}, many)
	assert.For(ctx, "smaller").ThatInteger(len(packed)).IsAtMost(len(plain) / 4)
	r, err := capture.NewReader(ctx, bytes.NewReader(packed), capture.ReaderOptions{Fallback: test.Namespace})
	assert.For(ctx, "reader").ThatError(err).Succeeded()
	defer r.Close()
	assert.For(ctx, "flags").That(r.Flags() & capture.FlagZstd).Equals(capture.FlagZstd)
}

func TestDynamic(t *testing.T) {
	ctx := log.Testing(t)
	data := write(ctx, capture.Options{}, []binary.Object{
		&test.Holder{Value: &test.Contains{LeafField: test.Leaf{A: 9}}},
		any.New("boxed"),
	})
	got, _, err := capture.ReadAll(ctx, bytes.NewReader(data), capture.ReaderOptions{Dynamic: true})
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "count").ThatSlice(got).IsLength(2)

	holder, ok := got[0].(*schema.Object)
	assert.For(ctx, "dynamic holder").ThatBoolean(ok).IsTrue()
	value, _ := holder.Field("Value")
	leaf, _ := value.(*schema.Object).Field("LeafField")
	a, _ := leaf.(*schema.Object).Field("A")
	assert.For(ctx, "leaf").That(a).Equals(uint32(9))

	unboxed, err := binary.Unbox(got[1])
	assert.For(ctx, "unbox").ThatError(err).Succeeded()
	assert.For(ctx, "boxed").That(unboxed).Equals("boxed")
}

func TestForwardReference(t *testing.T) {
	ctx := log.Testing(t)
	a := &binary.Entity{Package: "cap", Identity: "A"}
	b := &binary.Entity{Package: "cap", Identity: "B"}
	a.Fields = binary.FieldList{{Declared: "B", Type: &schema.Pointer{Type: &schema.Struct{Entity: b}}}}
	b.Fields = binary.FieldList{{Declared: "A", Type: &schema.Pointer{Type: &schema.Struct{Entity: a}}}}
	classA, classB := schema.NewClass(a), schema.NewClass(b)
	inner := classA.New().(*schema.Object)
	mid := classB.New().(*schema.Object).SetField("A", inner)
	outer := classA.New().(*schema.Object).SetField("B", mid)

	data := write(ctx, capture.Options{Config: stream.Config{Discriminator: stream.ByName}}, []binary.Object{outer})
	got, entities, err := capture.ReadAll(ctx, bytes.NewReader(data), capture.ReaderOptions{Dynamic: true})
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "entities").ThatSlice(entities).IsLength(2)
	assert.For(ctx, "declared first").ThatString(entities[0].Key()).Equals("cap.B")
	gotMid, _ := got[0].(*schema.Object).Field("B")
	gotInner, _ := gotMid.(*schema.Object).Field("A")
	assert.For(ctx, "inner").ThatString(gotInner.(binary.Object).Class().Schema().Key()).Equals("cap.A")
}

func TestFailedWrite(t *testing.T) {
	ctx := log.Testing(t)
	bad := schema.NewClass(&binary.Entity{
		Package: "cap", Identity: "Bad",
		Fields: binary.FieldList{{Declared: "V", Type: &schema.Primitive{Method: schema.Int32}}},
	})
	buf := &bytes.Buffer{}
	w, _ := capture.NewWriter(ctx, buf, capture.Options{})
	err := w.Write(bad.New().(*schema.Object).SetField("V", "not an int"))
	assert.For(ctx, "bad write").ThatError(err).Failed()
	assert.For(ctx, "good write").ThatError(w.Write(test.ObjectB)).Succeeded()
	assert.For(ctx, "close").ThatError(w.Close()).Succeeded()
	assert.For(ctx, "closed write").ThatError(w.Write(test.ObjectB)).Failed()

	got, entities, err := capture.ReadAll(ctx, buf, capture.ReaderOptions{Fallback: test.Namespace})
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "objects").That(got).DeepEquals([]binary.Object{test.ObjectB})
	assert.For(ctx, "entities").ThatSlice(entities).IsLength(1)
}

func TestSignatureMismatch(t *testing.T) {
	ctx := log.Testing(t)
	// A different layout under the key of a compiled class.
	impostor := schema.NewClass(&binary.Entity{
		Package: "test", Identity: "Leaf",
		Fields: binary.FieldList{{Declared: "S", Type: &schema.Primitive{Method: schema.String}}},
	})
	data := write(ctx, capture.Options{}, []binary.Object{
		impostor.New().(*schema.Object).SetField("S", "x"),
	})
	got, _, err := capture.ReadAll(ctx, bytes.NewReader(data), capture.ReaderOptions{Fallback: test.Namespace})
	assert.For(ctx, "read").ThatError(err).Succeeded()
	s, _ := got[0].(*schema.Object).Field("S")
	assert.For(ctx, "dynamic").That(s).Equals("x")
}

func TestBadHeader(t *testing.T) {
	ctx := log.Testing(t)
	_, err := capture.NewReader(ctx, bytes.NewReader([]byte("BOB")), capture.ReaderOptions{})
	assert.For(ctx, "short").ThatError(err).HasCause(pod.ErrTruncated)
	_, err = capture.NewReader(ctx, bytes.NewReader([]byte("JUNK\x01\x00")), capture.ReaderOptions{})
	assert.For(ctx, "magic").ThatError(err).HasCause(capture.ErrNotCapture)
	_, err = capture.NewReader(ctx, bytes.NewReader([]byte("BOBJ\x09\x00")), capture.ReaderOptions{})
	assert.For(ctx, "version").ThatError(err).Failed()
	_, err = capture.NewReader(ctx, bytes.NewReader([]byte("BOBJ\x01\x80")), capture.ReaderOptions{})
	assert.For(ctx, "flags").ThatError(err).Failed()
}

func TestTruncated(t *testing.T) {
	ctx := log.Testing(t)
	data := write(ctx, capture.Options{}, objects())
	for i := 0; i < len(data); i++ {
		_, _, err := capture.ReadAll(ctx, bytes.NewReader(data[:i]), capture.ReaderOptions{Fallback: test.Namespace})
		assert.For(ctx, "truncated to %d", i).ThatError(err).HasCause(pod.ErrTruncated)
	}
}

func TestUnknownRecord(t *testing.T) {
	ctx := log.Testing(t)
	_, _, err := capture.ReadAll(ctx, bytes.NewReader([]byte("BOBJ\x01\x00\x07")), capture.ReaderOptions{})
	assert.For(ctx, "unknown").ThatError(err).Failed()
}
