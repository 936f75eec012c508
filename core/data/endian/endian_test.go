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

package endian_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/data/endian"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/core/data/pod/test"
	"github.com/iburinoc/binobj/core/log"
)

var littleData = []test.ReadWriteTests{
	{Name: "Bool",
		Values: []bool{true, false},
		Data:   []byte{1, 0},
	},
	{Name: "Int8",
		Values: []int8{0, 127, -128, -1},
		Data:   []byte{0x00, 0x7f, 0x80, 0xff},
	},
	{Name: "Uint8",
		Values: []uint8{0x00, 0x7f, 0x80, 0xff},
		Data:   []byte{0x00, 0x7f, 0x80, 0xff},
	},
	{Name: "Int16",
		Values: []int16{0, 32767, -32768, -1},
		Data: []byte{
			0x00, 0x00,
			0xff, 0x7f,
			0x00, 0x80,
			0xff, 0xff,
		}},
	{Name: "Uint16",
		Values: []uint16{0, 0xbeef, 0xc0de},
		Data: []byte{
			0x00, 0x00,
			0xef, 0xbe,
			0xde, 0xc0,
		}},
	{Name: "Int32",
		Values: []int32{0, 2147483647, -2147483648, -1},
		Data: []byte{
			0x00, 0x00, 0x00, 0x00,
			0xff, 0xff, 0xff, 0x7f,
			0x00, 0x00, 0x00, 0x80,
			0xff, 0xff, 0xff, 0xff,
		}},
	{Name: "Uint32",
		Values: []uint32{0, 0x01234567, 0x10abcdef},
		Data: []byte{
			0x00, 0x00, 0x00, 0x00,
			0x67, 0x45, 0x23, 0x01,
			0xef, 0xcd, 0xab, 0x10,
		}},
	{Name: "Int64",
		Values: []int64{0, -1},
		Data: []byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		}},
	{Name: "Uint64",
		Values: []uint64{0x0123456789abcdef},
		Data:   []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01},
	},
	{Name: "Float32",
		Values: []float32{0, 1, 64.5},
		Data: []byte{
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x80, 0x3f,
			0x00, 0x00, 0x81, 0x42,
		}},
	{Name: "Float64",
		Values: []float64{0, 1},
		Data: []byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f,
		}},
	{Name: "String",
		Values: []string{"Hi", ""},
		Data: []byte{
			0x02, 0x00, 0x00, 0x00, 'H', 'i',
			0x00, 0x00, 0x00, 0x00,
		}},
	{Name: "Bytes",
		Values: [][]byte{{0xde, 0xad}, {}},
		Data: []byte{
			0x02, 0x00, 0x00, 0x00, 0xde, 0xad,
			0x00, 0x00, 0x00, 0x00,
		}},
}

var bigData = []test.ReadWriteTests{
	{Name: "Uint16",
		Values: []uint16{0xbeef},
		Data:   []byte{0xbe, 0xef},
	},
	{Name: "Int32",
		Values: []int32{-2},
		Data:   []byte{0xff, 0xff, 0xff, 0xfe},
	},
	{Name: "Float32",
		Values: []float32{1},
		Data:   []byte{0x3f, 0x80, 0x00, 0x00},
	},
	{Name: "String",
		Values: []string{"Hi"},
		Data:   []byte{0x00, 0x00, 0x00, 0x02, 'H', 'i'},
	},
}

func little(r io.Reader, w io.Writer) (pod.Reader, pod.Writer) {
	return endian.Reader(r, endian.Little), endian.Writer(w, endian.Little)
}

func big(r io.Reader, w io.Writer) (pod.Reader, pod.Writer) {
	return endian.Reader(r, endian.Big), endian.Writer(w, endian.Big)
}

func TestReadWrite(t *testing.T) {
	ctx := log.Testing(t)
	test.ReadWrite(ctx, littleData, little)
	test.ReadWrite(ctx, bigData, big)
}

func TestData(t *testing.T) {
	ctx := log.Testing(t)
	test.ReadWriteData(ctx, littleData, little)
}

func TestCount(t *testing.T) {
	ctx := log.Testing(t)
	test.ReadWriteCount(ctx, []uint32{0, 0x01234567}, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x67, 0x45, 0x23, 0x01,
	}, little)
}

func TestSetErrors(t *testing.T) {
	ctx := log.Testing(t)
	test.ReadWriteErrors(ctx, littleData, little)
}

func TestIOErrors(t *testing.T) {
	ctx := log.Testing(t)
	test.ReadWriteIOErrors(ctx, littleData, little)
}

func TestTruncated(t *testing.T) {
	ctx := log.Testing(t)
	test.ReadWriteTruncated(ctx, littleData, little)
	test.ReadWriteTruncated(ctx, bigData, big)
}

func TestEmptyStream(t *testing.T) {
	ctx := log.Testing(t)
	r := endian.Reader(&bytes.Buffer{}, endian.Little)
	assert.For(ctx, "value").ThatInteger(int(r.Int8())).Equals(0)
	assert.For(ctx, "err").ThatError(r.Error()).HasCause(pod.ErrTruncated)
}

func TestOversizedLength(t *testing.T) {
	ctx := log.Testing(t)
	r := endian.Reader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 'h', 'i'}), endian.Little)
	got := r.String()
	assert.For(ctx, "string").ThatString(got).Equals("")
	assert.For(ctx, "err").ThatError(r.Error()).HasCause(pod.ErrTruncated)
}

func TestParseOrder(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		in     string
		expect interface{}
	}{
		{"", endian.Little},
		{"little", endian.Little},
		{"BE", endian.Big},
		{"big", endian.Big},
	} {
		got, err := endian.ParseOrder(test.in)
		assert.For(ctx, "err %q", test.in).ThatError(err).Succeeded()
		assert.For(ctx, "order %q", test.in).That(got).Equals(test.expect)
	}
	_, err := endian.ParseOrder("middle")
	assert.For(ctx, "err").ThatError(err).Failed()
}
