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
	"strings"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/framework/binary"
)

// Method is the scalar kind of a Primitive. It selects the pod method used to
// encode and decode the value.
type Method uint8

const (
	Bool Method = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	String
	Bytes
	ID
)

var methodNames = []string{
	"Bool", "Int8", "Uint8", "Int16", "Uint16", "Int32", "Uint32",
	"Int64", "Uint64", "Float32", "Float64", "String", "Bytes", "ID",
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// Valid returns true if m is a known scalar kind.
func (m Method) Valid() bool { return int(m) < len(methodNames) }

// ParseMethod returns the Method with the given name, ignoring case.
func ParseMethod(s string) (Method, error) {
	for i, n := range methodNames {
		if strings.EqualFold(n, s) {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("Unknown primitive method %q", s)
}

// Primitive is the Type descriptor for scalar values.
type Primitive struct {
	Name   string // The simple name of the type, not set in compact form.
	Method Method // The scalar kind.
}

func (p *Primitive) String() string {
	return fmt.Sprint(p)
}

// Format implements the fmt.Formatter interface
func (p *Primitive) Format(f fmt.State, c rune) {
	switch {
	case c == 'z': // Private format specifier, supports Entity.Signature
		fmt.Fprint(f, strings.ToLower(p.Method.String()))
	case p.Name != "":
		fmt.Fprint(f, p.Name)
	default:
		fmt.Fprint(f, strings.ToLower(p.Method.String()))
	}
}

func (p *Primitive) mismatch(e binary.Encoder, value interface{}) {
	e.SetError(binary.ErrTypeMismatch{Type: p.String(), Value: value})
}

func (p *Primitive) EncodeValue(e binary.Encoder, value interface{}) {
	ok := true
	switch p.Method {
	case Bool:
		var v bool
		if v, ok = value.(bool); ok {
			e.Bool(v)
		}
	case Int8:
		var v int8
		if v, ok = value.(int8); ok {
			e.Int8(v)
		}
	case Uint8:
		var v uint8
		if v, ok = value.(uint8); ok {
			e.Uint8(v)
		}
	case Int16:
		var v int16
		if v, ok = value.(int16); ok {
			e.Int16(v)
		}
	case Uint16:
		var v uint16
		if v, ok = value.(uint16); ok {
			e.Uint16(v)
		}
	case Int32:
		var v int32
		if v, ok = value.(int32); ok {
			e.Int32(v)
		}
	case Uint32:
		var v uint32
		if v, ok = value.(uint32); ok {
			e.Uint32(v)
		}
	case Int64:
		var v int64
		if v, ok = value.(int64); ok {
			e.Int64(v)
		}
	case Uint64:
		var v uint64
		if v, ok = value.(uint64); ok {
			e.Uint64(v)
		}
	case Float32:
		var v float32
		if v, ok = value.(float32); ok {
			e.Float32(v)
		}
	case Float64:
		var v float64
		if v, ok = value.(float64); ok {
			e.Float64(v)
		}
	case String:
		var v string
		if v, ok = value.(string); ok {
			e.String(v)
		}
	case Bytes:
		var v []byte
		if v, ok = value.([]byte); ok {
			e.Bytes(v)
		}
	case ID:
		var v id.ID
		if v, ok = value.(id.ID); ok {
			e.Data(v[:])
		}
	default:
		ok = false
	}
	if !ok {
		p.mismatch(e, value)
	}
}

func (p *Primitive) DecodeValue(d binary.Decoder) interface{} {
	switch p.Method {
	case Bool:
		return d.Bool()
	case Int8:
		return d.Int8()
	case Uint8:
		return d.Uint8()
	case Int16:
		return d.Int16()
	case Uint16:
		return d.Uint16()
	case Int32:
		return d.Int32()
	case Uint32:
		return d.Uint32()
	case Int64:
		return d.Int64()
	case Uint64:
		return d.Uint64()
	case Float32:
		return d.Float32()
	case Float64:
		return d.Float64()
	case String:
		return d.String()
	case Bytes:
		return d.Bytes()
	case ID:
		v := id.ID{}
		d.Data(v[:])
		return v
	default:
		d.SetError(fmt.Errorf("Decode unknown primitive method %v", p.Method))
		return nil
	}
}

// IsPOD returns true for every fixed size scalar.
func (p *Primitive) IsPOD() bool {
	return p.Method != String && p.Method != Bytes
}

func (*Primitive) IsSimple() bool {
	return true
}
