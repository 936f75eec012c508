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

package endian

import (
	eb "encoding/binary"
	"io"
	"math"

	"github.com/iburinoc/binobj/core/data/pod"
)

// Reader returns a pod.Reader decoding fixed-width values from r in order.
func Reader(r io.Reader, order eb.ByteOrder) pod.Reader {
	return &reader{in: r, order: order}
}

type reader struct {
	in    io.Reader
	order eb.ByteOrder
	buf   [8]byte
	err   error
}

// next reads n bytes into buf. After the first failure it returns zeros.
func (r *reader) next(n int) []byte {
	b := r.buf[:n]
	if r.err == nil {
		r.err = pod.ReadFull(r.in, b)
	}
	if r.err != nil {
		clear(b)
	}
	return b
}

func (r *reader) Data(p []byte) {
	if r.err == nil {
		r.err = pod.ReadFull(r.in, p)
	}
}

func (r *reader) Bool() bool       { return r.Uint8() != 0 }
func (r *reader) Int8() int8       { return int8(r.Uint8()) }
func (r *reader) Uint8() uint8     { return r.next(1)[0] }
func (r *reader) Int16() int16     { return int16(r.Uint16()) }
func (r *reader) Uint16() uint16   { return r.order.Uint16(r.next(2)) }
func (r *reader) Int32() int32     { return int32(r.Uint32()) }
func (r *reader) Uint32() uint32   { return r.order.Uint32(r.next(4)) }
func (r *reader) Int64() int64     { return int64(r.Uint64()) }
func (r *reader) Uint64() uint64   { return r.order.Uint64(r.next(8)) }
func (r *reader) Float32() float32 { return math.Float32frombits(r.Uint32()) }
func (r *reader) Float64() float64 { return math.Float64frombits(r.Uint64()) }
func (r *reader) String() string   { return string(r.Bytes()) }
func (r *reader) Count() uint32    { return r.Uint32() }

func (r *reader) Bytes() []byte {
	n := r.Uint32()
	if r.err != nil {
		return nil
	}
	data, err := pod.ReadSized(r.in, uint64(n))
	if err != nil {
		r.err = err
		return nil
	}
	return data
}

func (r *reader) Error() error { return r.err }

func (r *reader) SetError(err error) {
	if r.err == nil {
		r.err = err
	}
}
