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

package stream

import (
	eb "encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/iburinoc/binobj/core/data/endian"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/registry"
	"github.com/iburinoc/binobj/framework/binary/vle"
)

// Codec selects the primitive codec of a stream.
type Codec int

const (
	// Fixed encodes every value at its natural width.
	Fixed Codec = iota
	// VLE encodes integers and lengths with a variable length encoding.
	VLE
)

func (c Codec) String() string {
	switch c {
	case Fixed:
		return "fixed"
	case VLE:
		return "vle"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

// ParseCodec returns the codec named by s. The empty string selects Fixed.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "", "fixed":
		return Fixed, nil
	case "vle", "variable":
		return VLE, nil
	default:
		return Fixed, fmt.Errorf("Unknown codec %q", s)
	}
}

// Discriminator selects how the type of a Variant is written.
type Discriminator int

const (
	// ByHash writes the 20 byte identifier of the entity.
	ByHash Discriminator = iota
	// ByName writes the key of the entity as a string.
	ByName
)

func (d Discriminator) String() string {
	switch d {
	case ByHash:
		return "hash"
	case ByName:
		return "name"
	default:
		return fmt.Sprintf("Discriminator(%d)", int(d))
	}
}

// ParseDiscriminator returns the discriminator named by s. The empty string
// selects ByHash.
func ParseDiscriminator(s string) (Discriminator, error) {
	switch strings.ToLower(s) {
	case "", "hash", "id":
		return ByHash, nil
	case "name", "key":
		return ByName, nil
	default:
		return ByHash, fmt.Errorf("Unknown discriminator %q", s)
	}
}

// Config holds the settings shared by an encoder and the decoder that reads
// its output. The zero Config is fixed width little endian, discriminated by
// hash, in full mode, using registry.Global.
type Config struct {
	Codec         Codec
	ByteOrder     eb.ByteOrder // Only used by Fixed. Defaults to little endian.
	Discriminator Discriminator
	Mode          binary.Mode
	Namespace     *registry.Namespace // Defaults to registry.Global.
}

func (c Config) order() eb.ByteOrder {
	if c.ByteOrder == nil {
		return endian.Little
	}
	return c.ByteOrder
}

func (c Config) namespace() *registry.Namespace {
	if c.Namespace == nil {
		return registry.Global
	}
	return c.Namespace
}

func (c Config) writer(w io.Writer) pod.Writer {
	if c.Codec == VLE {
		return vle.Writer(w)
	}
	return endian.Writer(w, c.order())
}

func (c Config) reader(r io.Reader) pod.Reader {
	if c.Codec == VLE {
		return vle.Reader(r)
	}
	return endian.Reader(r, c.order())
}
