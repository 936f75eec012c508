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

package schema

import (
	"fmt"

	"github.com/iburinoc/binobj/framework/binary"
)

// maxPrealloc bounds the capacity reserved from a count read off the stream.
// Larger collections grow as their elements are actually decoded.
const maxPrealloc = 1024

// maxEmpty bounds the count of a collection whose elements take no bytes
// on the wire.
const maxEmpty = 1 << 16

func prealloc(count uint32) int {
	if count > maxPrealloc {
		return maxPrealloc
	}
	return int(count)
}

// decodeElements decodes count values of type t, stopping at the first error.
// checkCount fails d if count elements made of types would decode from
// zero bytes and there are more than maxEmpty of them.
func checkCount(d binary.Decoder, count uint32, types ...binary.Type) bool {
	if count <= maxEmpty {
		return true
	}
	for _, t := range types {
		if !isEmpty(t, map[*binary.Entity]bool{}) {
			return true
		}
	}
	d.SetError(fmt.Errorf("Count %d of %v exceeds %d empty elements", count, types[len(types)-1], maxEmpty))
	return false
}

// isEmpty returns true if values of t encode to no bytes at all.
func isEmpty(t binary.Type, visiting map[*binary.Entity]bool) bool {
	switch t := t.(type) {
	case *Array:
		return t.Size == 0 || isEmpty(t.ValueType, visiting)
	case *Struct:
		if t.Entity == nil || visiting[t.Entity] {
			return false
		}
		visiting[t.Entity] = true
		defer delete(visiting, t.Entity)
		for _, f := range t.Entity.Fields {
			if !isEmpty(f.Type, visiting) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func decodeElements(d binary.Decoder, t binary.Type, count uint32) []interface{} {
	if !checkCount(d, count, t) {
		return nil
	}
	v := make([]interface{}, 0, prealloc(count))
	for i := uint32(0); i < count; i++ {
		e := t.DecodeValue(d)
		if d.Error() != nil {
			return nil
		}
		v = append(v, e)
	}
	return v
}

// Array is the Type descriptor for fixed size buffers of known type.
type Array struct {
	Alias     string      // The alias this array type was given, if present
	ValueType binary.Type // The value type stored in the array
	Size      uint32      // The fixed size of the array
}

// Slice is the Type descriptor for dynamically sized buffers of known type,
// encoded with a preceding count.
type Slice struct {
	Alias     string      // The alias this array type was given, if present
	ValueType binary.Type // The value type stored in the slice.
}

func (a *Array) String() string {
	return fmt.Sprint(a)
}

// Format implements the fmt.Formatter interface
func (a *Array) Format(f fmt.State, c rune) {
	switch {
	case c == 'z': // Private format specifier, supports Entity.Signature
		fmt.Fprintf(f, "[%d]%z", a.Size, a.ValueType)
	case a.Alias != "":
		fmt.Fprint(f, a.Alias)
	default:
		fmt.Fprintf(f, "[%d]%v", a.Size, a.ValueType)
	}
}

func (a *Array) EncodeValue(e binary.Encoder, value interface{}) {
	v, ok := value.([]interface{})
	if !ok || uint32(len(v)) != a.Size {
		e.SetError(binary.ErrTypeMismatch{Type: a.String(), Value: value})
		return
	}
	for i := range v {
		a.ValueType.EncodeValue(e, v[i])
	}
}

func (a *Array) DecodeValue(d binary.Decoder) interface{} {
	if v := decodeElements(d, a.ValueType, a.Size); v != nil {
		return v
	}
	return nil
}

func (a *Array) IsPOD() bool {
	return a.ValueType.IsPOD()
}

func (a *Array) IsSimple() bool {
	return a.ValueType.IsSimple()
}

func (s *Slice) String() string {
	return fmt.Sprint(s)
}

// Format implements the fmt.Formatter interface
func (s *Slice) Format(f fmt.State, c rune) {
	switch {
	case c == 'z': // Private format specifier, supports Entity.Signature
		fmt.Fprintf(f, "[]%z", s.ValueType)
	case s.Alias != "":
		fmt.Fprint(f, s.Alias)
	default:
		fmt.Fprintf(f, "[]%v", s.ValueType)
	}
}

func (s *Slice) EncodeValue(e binary.Encoder, value interface{}) {
	v, ok := value.([]interface{})
	if !ok && value != nil {
		e.SetError(binary.ErrTypeMismatch{Type: s.String(), Value: value})
		return
	}
	e.Uint32(uint32(len(v)))
	for i := range v {
		s.ValueType.EncodeValue(e, v[i])
	}
}

func (s *Slice) DecodeValue(d binary.Decoder) interface{} {
	count := d.Count()
	if d.Error() != nil {
		return nil
	}
	if v := decodeElements(d, s.ValueType, count); v != nil {
		return v
	}
	return nil
}

func (s *Slice) IsPOD() bool {
	return false
}

func (s *Slice) IsSimple() bool {
	return s.ValueType.IsPOD()
}
