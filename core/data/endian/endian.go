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

// Package endian implements the fixed-width pod.Reader and pod.Writer.
//
// Every scalar kind has a fixed size: bool and 8 bit integers take one byte,
// 16 bit integers two, 32 bit integers and float32 four, 64 bit integers and
// float64 eight. Strings and byte sequences are a uint32 length followed by
// the raw bytes.
package endian

import (
	eb "encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

// Little and Big are the supported byte orders.
var (
	Little eb.ByteOrder = eb.LittleEndian
	Big    eb.ByteOrder = eb.BigEndian
)

// ParseOrder returns the byte order named by s ("little" or "big").
// The empty string selects Little.
func ParseOrder(s string) (eb.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	default:
		return nil, errors.Errorf("unknown byte order %q", s)
	}
}
