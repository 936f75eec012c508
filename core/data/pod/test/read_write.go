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

// Package test holds the shared conformance checks for pod.Reader and
// pod.Writer implementations.
package test

import (
	"bytes"
	"context"
	"io"
	"reflect"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/core/fault"
	"github.com/iburinoc/binobj/core/log"
)

const (
	ReadError   = fault.Const("ReadError")
	WriteError  = fault.Const("WriteError")
	SecondError = fault.Const("SecondError")
)

// ReadWriteTests is a named list of values of one kind along with the bytes
// they must encode to.
type ReadWriteTests struct {
	Name   string
	Values interface{}
	Data   []byte
}

// Factory builds the reader and writer under test.
type Factory func(io.Reader, io.Writer) (pod.Reader, pod.Writer)

// ReadWrite checks that every value encodes to exactly the expected bytes and
// decodes back to itself.
func ReadWrite(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		b := &bytes.Buffer{}
		reader, writer := factory(b, b)
		r := reflect.ValueOf(reader).MethodByName(e.Name)
		w := reflect.ValueOf(writer).MethodByName(e.Name)
		s := reflect.ValueOf(e.Values)
		for i := 0; i < s.Len(); i++ {
			w.Call([]reflect.Value{s.Index(i)})
		}
		assert.With(ctx).ThatSlice(b.Bytes()).Equals(e.Data)
		for i := 0; i < s.Len(); i++ {
			ctx := log.V{"index": i}.Bind(ctx)
			expected := s.Index(i)
			got := r.Call(nil)[0]
			assert.With(ctx).ThatError(reader.Error()).Succeeded()
			assert.With(ctx).That(got.Interface()).DeepEquals(expected.Interface())
		}
		assert.For(ctx, "consumed").ThatInteger(b.Len()).Equals(0)
	}
}

// ReadWriteData checks raw byte passthrough.
func ReadWriteData(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		b := &bytes.Buffer{}
		reader, writer := factory(b, b)
		writer.Data(e.Data)
		assert.For(ctx, "written").ThatSlice(b.Bytes()).Equals(e.Data)
		got := make([]byte, len(e.Data))
		reader.Data(got)
		assert.For(ctx, "result").ThatSlice(got).Equals(e.Data)
	}
}

// ReadWriteCount checks that Count reads what Uint32 wrote.
func ReadWriteCount(ctx context.Context, values []uint32, raw []byte, factory Factory) {
	b := &bytes.Buffer{}
	reader, writer := factory(b, b)
	for _, v := range values {
		writer.Uint32(v)
	}
	assert.For(ctx, "bytes").ThatSlice(b.Bytes()).Equals(raw)
	for _, expect := range values {
		got := reader.Count()
		assert.With(ctx).That(got).Equals(expect)
	}
}

// ReadWriteErrors checks the sticky error state: the first error set wins and
// further calls do not replace it.
func ReadWriteErrors(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		b := &bytes.Buffer{}
		reader, writer := factory(b, b)
		r := reflect.ValueOf(reader).MethodByName(e.Name)
		w := reflect.ValueOf(writer).MethodByName(e.Name)
		s := reflect.ValueOf(e.Values)
		writer.SetError(WriteError)
		w.Call([]reflect.Value{s.Index(0)})
		assert.With(ctx).ThatError(writer.Error()).Equals(WriteError)
		assert.For(ctx, "no bytes after error").ThatInteger(b.Len()).Equals(0)
		writer.SetError(SecondError)
		w.Call([]reflect.Value{s.Index(0)})
		assert.With(ctx).ThatError(writer.Error()).Equals(WriteError)
		reader.SetError(ReadError)
		r.Call(nil)
		assert.With(ctx).ThatError(reader.Error()).Equals(ReadError)
		reader.SetError(SecondError)
		r.Call(nil)
		assert.With(ctx).ThatError(reader.Error()).Equals(ReadError)
	}
	b := &bytes.Buffer{}
	data := []byte{1}
	reader, writer := factory(b, b)
	writer.SetError(WriteError)
	writer.Data(data)
	assert.With(ctx).ThatError(writer.Error()).Equals(WriteError)
	reader.SetError(ReadError)
	reader.Data(data)
	assert.With(ctx).ThatError(reader.Error()).Equals(ReadError)
}

// ReadWriteIOErrors checks that errors from the underlying stream surface
// unchanged.
func ReadWriteIOErrors(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		reader, writer := factory(&Bytes{}, &LimitedWriter{})
		r := reflect.ValueOf(reader).MethodByName(e.Name)
		w := reflect.ValueOf(writer).MethodByName(e.Name)
		s := reflect.ValueOf(e.Values)
		w.Call([]reflect.Value{s.Index(0)})
		assert.With(ctx).ThatError(writer.Error()).Equals(WriteError)
		r.Call(nil)
		assert.With(ctx).ThatError(reader.Error()).Equals(ReadError)
	}
	buf := []byte{1}
	data := []byte{1, 2}
	reader, writer := factory(&Bytes{Data: buf}, &LimitedWriter{Limit: 1})
	writer.Data(data)
	assert.With(ctx).ThatError(writer.Error()).Equals(io.ErrShortWrite)
	reader.Data(data)
	assert.With(ctx).ThatError(reader.Error()).Equals(ReadError)
}

// ReadWriteTruncated checks that cutting the encoded bytes of each value at
// every boundary fails the read with pod.ErrTruncated.
func ReadWriteTruncated(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		s := reflect.ValueOf(e.Values)
		for i := 0; i < s.Len(); i++ {
			full := &bytes.Buffer{}
			_, writer := factory(nil, full)
			w := reflect.ValueOf(writer).MethodByName(e.Name)
			w.Call([]reflect.Value{s.Index(i)})
			data := full.Bytes()
			for cut := 0; cut < len(data); cut++ {
				ctx := log.V{"index": i, "cut": cut}.Bind(ctx)
				reader, _ := factory(bytes.NewReader(data[:cut]), nil)
				reflect.ValueOf(reader).MethodByName(e.Name).Call(nil)
				assert.With(ctx).ThatError(reader.Error()).HasCause(pod.ErrTruncated)
			}
		}
	}
}
