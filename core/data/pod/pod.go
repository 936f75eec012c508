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

// Package pod defines the contract for reading and writing plain old data
// values to a binary stream.
//
// Readers and writers have a sticky error state: after the first failure all
// further writes are no-ops and all further reads return the zero value of the
// type read. Error() reports the failure that stopped the stream.
package pod

import (
	"io"

	"github.com/iburinoc/binobj/core/fault"
	"github.com/pkg/errors"
)

// ErrTruncated is the root cause of every read that ran off the end of the
// input.
const ErrTruncated = fault.Const("stream truncated")

// Reader provides methods for decoding values.
type Reader interface {
	// Data reads the data bytes in their entirety.
	Data([]byte)
	// Bool decodes and returns a boolean value from the Reader.
	Bool() bool
	// Int8 decodes and returns a signed, 8 bit integer value from the Reader.
	Int8() int8
	// Uint8 decodes and returns an unsigned, 8 bit integer value from the Reader.
	Uint8() uint8
	// Int16 decodes and returns a signed, 16 bit integer value from the Reader.
	Int16() int16
	// Uint16 decodes and returns an unsigned, 16 bit integer value from the Reader.
	Uint16() uint16
	// Int32 decodes and returns a signed, 32 bit integer value from the Reader.
	Int32() int32
	// Uint32 decodes and returns an unsigned, 32 bit integer value from the Reader.
	Uint32() uint32
	// Int64 decodes and returns a signed, 64 bit integer value from the Reader.
	Int64() int64
	// Uint64 decodes and returns an unsigned, 64 bit integer value from the Reader.
	Uint64() uint64
	// Float32 decodes and returns a 32 bit floating-point value from the Reader.
	Float32() float32
	// Float64 decodes and returns a 64 bit floating-point value from the Reader.
	Float64() float64
	// String decodes and returns a length prefixed string from the Reader.
	String() string
	// Bytes decodes and returns a length prefixed byte sequence from the Reader.
	Bytes() []byte
	// Count decodes a collection count from the stream.
	Count() uint32
	// Error returns the error which stopped reading from the stream, or nil.
	Error() error
	// SetError sets the error state and stops reading from the stream.
	SetError(error)
}

// Writer provides methods for encoding values.
type Writer interface {
	// Data writes the data bytes in their entirety.
	Data([]byte)
	// Bool encodes a boolean value to the Writer.
	Bool(bool)
	// Int8 encodes a signed, 8 bit integer value to the Writer.
	Int8(int8)
	// Uint8 encodes an unsigned, 8 bit integer value to the Writer.
	Uint8(uint8)
	// Int16 encodes a signed, 16 bit integer value to the Writer.
	Int16(int16)
	// Uint16 encodes an unsigned, 16 bit integer value to the Writer.
	Uint16(uint16)
	// Int32 encodes a signed, 32 bit integer value to the Writer.
	Int32(int32)
	// Uint32 encodes an usigned, 32 bit integer value to the Writer.
	Uint32(uint32)
	// Int64 encodes a signed, 64 bit integer value to the Writer.
	Int64(int64)
	// Uint64 encodes an unsigned, 64 bit integer value to the Writer.
	Uint64(uint64)
	// Float32 encodes a 32 bit floating-point value to the Writer.
	Float32(float32)
	// Float64 encodes a 64 bit floating-point value to the Writer.
	Float64(float64)
	// String encodes a length prefixed string to the Writer.
	String(string)
	// Bytes encodes a length prefixed byte sequence to the Writer.
	Bytes([]byte)
	// Error returns the error which stopped writing to the stream, or nil.
	Error() error
	// SetError sets the error state and stops writing to the stream.
	SetError(error)
}

// chunk is the most a length prefixed read allocates ahead of the bytes it
// has actually received.
const chunk = 64 << 10

// ReadFull fills p from r. Running out of input is reported as ErrTruncated.
func ReadFull(r io.Reader, p []byte) error {
	n, err := io.ReadFull(r, p)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.Wrapf(ErrTruncated, "wanted %d bytes, got %d", len(p), n)
	default:
		return err
	}
}

// ReadSized reads size bytes from r. The buffer grows as bytes arrive, so a
// corrupt size fails with ErrTruncated instead of allocating size bytes up
// front.
func ReadSized(r io.Reader, size uint64) ([]byte, error) {
	if size <= chunk {
		out := make([]byte, size)
		return out, ReadFull(r, out)
	}
	out := make([]byte, 0, chunk)
	for uint64(len(out)) < size {
		n := size - uint64(len(out))
		if n > chunk {
			n = chunk
		}
		start := len(out)
		out = append(out, make([]byte, n)...)
		if err := ReadFull(r, out[start:]); err != nil {
			return nil, errors.Wrapf(err, "reading %d of %d bytes", start, size)
		}
	}
	return out, nil
}

// WriteFull writes all of data to w, reporting a short write as an error.
func WriteFull(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}
	return nil
}
