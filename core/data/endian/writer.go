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

// Writer returns a pod.Writer encoding fixed-width values to w in order.
func Writer(w io.Writer, order eb.ByteOrder) pod.Writer {
	return &writer{out: w, order: order}
}

type writer struct {
	out   io.Writer
	order eb.ByteOrder
	buf   [8]byte
	err   error
}

func (w *writer) Data(p []byte) {
	if w.err == nil {
		w.err = pod.WriteFull(w.out, p)
	}
}

func (w *writer) Bool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	w.Uint8(b)
}

func (w *writer) Uint8(v uint8) {
	w.buf[0] = v
	w.Data(w.buf[:1])
}

func (w *writer) Uint16(v uint16) {
	w.order.PutUint16(w.buf[:], v)
	w.Data(w.buf[:2])
}

func (w *writer) Uint32(v uint32) {
	w.order.PutUint32(w.buf[:], v)
	w.Data(w.buf[:4])
}

func (w *writer) Uint64(v uint64) {
	w.order.PutUint64(w.buf[:], v)
	w.Data(w.buf[:8])
}

func (w *writer) Int8(v int8)       { w.Uint8(uint8(v)) }
func (w *writer) Int16(v int16)     { w.Uint16(uint16(v)) }
func (w *writer) Int32(v int32)     { w.Uint32(uint32(v)) }
func (w *writer) Int64(v int64)     { w.Uint64(uint64(v)) }
func (w *writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }
func (w *writer) Float64(v float64) { w.Uint64(math.Float64bits(v)) }

func (w *writer) String(v string) {
	w.Uint32(uint32(len(v)))
	w.Data([]byte(v))
}

func (w *writer) Bytes(v []byte) {
	w.Uint32(uint32(len(v)))
	w.Data(v)
}

func (w *writer) Error() error { return w.err }

func (w *writer) SetError(err error) {
	if w.err == nil {
		w.err = err
	}
}
