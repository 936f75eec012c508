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

// Package id provides the 20 byte SHA-1 identifiers that name encoded types
// on the wire.
package id

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// Size is the size of an ID in bytes.
const Size = sha1.Size

// ID is the SHA-1 digest of a name.
// The zero ID is reserved to mean "no type".
type ID [Size]byte

// OfBytes returns the ID of the concatenation of data.
func OfBytes(data ...[]byte) ID {
	h := sha1.New()
	for _, d := range data {
		h.Write(d)
	}
	var out ID
	h.Sum(out[:0])
	return out
}

// OfString returns the ID of the concatenation of strs.
func OfString(strs ...string) ID {
	h := sha1.New()
	for _, s := range strs {
		h.Write([]byte(s))
	}
	var out ID
	h.Sum(out[:0])
	return out
}

// IsValid returns true if id is not the zero ID.
func (id ID) IsValid() bool { return id != ID{} }

func (id ID) String() string { return hex.EncodeToString(id[:]) }

func (id ID) Format(f fmt.State, c rune) { fmt.Fprint(f, id.String()) }

// Parse parses the 40 hex digit form of an ID.
func Parse(s string) (ID, error) {
	var out ID
	b, err := hex.DecodeString(s)
	switch {
	case err != nil:
		return out, errors.Wrapf(err, "parsing ID %q", s)
	case len(b) != Size:
		return out, errors.Errorf("ID %q is %d bytes, expected %d", s, len(b), Size)
	}
	copy(out[:], b)
	return out, nil
}
