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

package vle

import (
	"io"
	"math"
	"math/bits"

	"github.com/iburinoc/binobj/core/data/pod"
)

// Reader creates a pod.Reader that reads from the provided io.Reader.
func Reader(r io.Reader) pod.Reader {
	return &reader{reader: r}
}

// Writer creates a pod.Writer that writes to the supplied io.Writer.
func Writer(w io.Writer) pod.Writer {
	return &writer{writer: w}
}

type reader struct {
	reader io.Reader
	tmp    [9]byte
	err    error
}

type writer struct {
	writer io.Writer
	tmp    [9]byte
	err    error
}

func zigzag(v int64) uint64 {
	u := uint64(v) << 1
	if v < 0 {
		u = ^u
	}
	return u
}

func unzigzag(u uint64) int64 {
	v := int64(u >> 1)
	if u&1 != 0 {
		v = ^v
	}
	return v
}

func (r *reader) uintv() uint64 {
	tag := r.Uint8()
	if r.err != nil {
		return 0
	}
	extra := bits.LeadingZeros8(^tag)
	v := uint64(tag & (0xff >> uint(extra)))
	if extra == 0 {
		return v
	}
	r.Data(r.tmp[:extra])
	if r.err != nil {
		return 0
	}
	for _, b := range r.tmp[:extra] {
		v = v<<8 | uint64(b)
	}
	return v
}

func (w *writer) uintv(v uint64) {
	space := uint64(0x7f)
	tag := byte(0)
	for o := len(w.tmp) - 1; ; o-- {
		if v <= space {
			w.tmp[o] = byte(v) | tag
			w.Data(w.tmp[o:])
			return
		}
		w.tmp[o] = byte(v)
		v >>= 8
		space >>= 1
		tag = tag>>1 | 0x80
	}
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	r.err = pod.ReadFull(r.reader, p)
}

func (w *writer) Data(data []byte) {
	if w.err != nil {
		return
	}
	w.err = pod.WriteFull(w.writer, data)
}

func (r *reader) Bool() bool { return r.Uint8() != 0 }

func (w *writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

func (r *reader) Int8() int8  { return int8(r.Uint8()) }
func (w *writer) Int8(v int8)  { w.Uint8(uint8(v)) }

func (r *reader) Uint8() uint8 {
	r.Data(r.tmp[:1])
	if r.err != nil {
		return 0
	}
	return r.tmp[0]
}

func (w *writer) Uint8(v uint8) {
	w.tmp[0] = v
	w.Data(w.tmp[:1])
}

func (r *reader) Int16() int16    { return int16(unzigzag(r.uintv())) }
func (w *writer) Int16(v int16)   { w.uintv(zigzag(int64(v))) }
func (r *reader) Uint16() uint16  { return uint16(r.uintv()) }
func (w *writer) Uint16(v uint16) { w.uintv(uint64(v)) }
func (r *reader) Int32() int32    { return int32(unzigzag(r.uintv())) }
func (w *writer) Int32(v int32)   { w.uintv(zigzag(int64(v))) }
func (r *reader) Uint32() uint32  { return uint32(r.uintv()) }
func (w *writer) Uint32(v uint32) { w.uintv(uint64(v)) }
func (r *reader) Int64() int64    { return unzigzag(r.uintv()) }
func (w *writer) Int64(v int64)   { w.uintv(zigzag(v)) }
func (r *reader) Uint64() uint64  { return r.uintv() }
func (w *writer) Uint64(v uint64) { w.uintv(v) }

func (r *reader) Float32() float32 {
	return math.Float32frombits(bits.ReverseBytes32(r.Uint32()))
}

func (w *writer) Float32(v float32) {
	w.Uint32(bits.ReverseBytes32(math.Float32bits(v)))
}

func (r *reader) Float64() float64 {
	return math.Float64frombits(bits.ReverseBytes64(r.Uint64()))
}

func (w *writer) Float64(v float64) {
	w.Uint64(bits.ReverseBytes64(math.Float64bits(v)))
}

func (r *reader) String() string { return string(r.Bytes()) }

func (w *writer) String(v string) {
	w.Uint32(uint32(len(v)))
	w.Data([]byte(v))
}

func (r *reader) Bytes() []byte {
	size := r.Uint32()
	if r.err != nil {
		return nil
	}
	data, err := pod.ReadSized(r.reader, uint64(size))
	if err != nil {
		r.err = err
		return nil
	}
	return data
}

func (w *writer) Bytes(v []byte) {
	w.Uint32(uint32(len(v)))
	w.Data(v)
}

func (r *reader) Count() uint32 { return r.Uint32() }

func (r *reader) Error() error { return r.err }
func (w *writer) Error() error { return w.err }

func (r *reader) SetError(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (w *writer) SetError(err error) {
	if w.err == nil {
		w.err = err
	}
}
