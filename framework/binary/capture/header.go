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

package capture

import (
	"io"

	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/data/endian"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/core/fault"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/stream"
)

const (
	// Magic is the first four bytes of every capture.
	Magic = "BOBJ"
	// Version is the format version written by this package.
	Version = 1

	// ErrNotCapture is returned when the stream does not start with Magic.
	ErrNotCapture = fault.Const("Not a capture")
)

// Flags describe how the body of a capture is encoded.
type Flags uint8

const (
	FlagZstd Flags = 1 << iota
	FlagVLE
	FlagBigEndian
	FlagByName
)

const knownFlags = FlagZstd | FlagVLE | FlagBigEndian | FlagByName

const (
	tagEnd uint8 = iota
	tagEntity
	tagObject
)

type header struct {
	version uint8
	flags   Flags
}

func flagsOf(cfg stream.Config, compress bool) Flags {
	f := Flags(0)
	if compress {
		f |= FlagZstd
	}
	if cfg.Codec == stream.VLE {
		f |= FlagVLE
	}
	if cfg.ByteOrder == endian.Big {
		f |= FlagBigEndian
	}
	if cfg.Discriminator == stream.ByName {
		f |= FlagByName
	}
	return f
}

// config returns the stream configuration of the capture body.
func (h header) config() stream.Config {
	cfg := stream.Config{Mode: binary.Full}
	if h.flags&FlagVLE != 0 {
		cfg.Codec = stream.VLE
	}
	if h.flags&FlagBigEndian != 0 {
		cfg.ByteOrder = endian.Big
	}
	if h.flags&FlagByName != 0 {
		cfg.Discriminator = stream.ByName
	}
	return cfg
}

func (h header) write(w io.Writer) error {
	return pod.WriteFull(w, append([]byte(Magic), h.version, uint8(h.flags)))
}

func readHeader(r io.Reader) (header, error) {
	buf := make([]byte, len(Magic)+2)
	if err := pod.ReadFull(r, buf); err != nil {
		return header{}, errors.Wrap(err, "Reading capture header")
	}
	if string(buf[:len(Magic)]) != Magic {
		return header{}, ErrNotCapture
	}
	h := header{version: buf[len(Magic)], flags: Flags(buf[len(Magic)+1])}
	if h.version != Version {
		return header{}, errors.Errorf("Unsupported capture version %d", h.version)
	}
	if h.flags&^knownFlags != 0 {
		return header{}, errors.Errorf("Unknown capture flags %#x", uint8(h.flags&^knownFlags))
	}
	return h, nil
}
