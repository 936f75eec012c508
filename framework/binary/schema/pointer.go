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

// Pointer is the Type descriptor for optional values. It is encoded as a
// presence bool followed, if true, by the pointed to value.
type Pointer struct {
	Type binary.Type // The pointed to type.
}

func (p *Pointer) String() string {
	return fmt.Sprint(p)
}

// Format implements the fmt.Formatter interface
func (p *Pointer) Format(f fmt.State, c rune) {
	switch c {
	case 'z': // Private format specifier, supports Entity.Signature
		fmt.Fprintf(f, "*%z", p.Type)
	default:
		fmt.Fprintf(f, "*%v", p.Type)
	}
}

func (p *Pointer) EncodeValue(e binary.Encoder, value interface{}) {
	if value == nil {
		e.Bool(false)
		return
	}
	e.Bool(true)
	p.Type.EncodeValue(e, value)
}

func (p *Pointer) DecodeValue(d binary.Decoder) interface{} {
	if !d.Bool() {
		return nil
	}
	return p.Type.DecodeValue(d)
}

func (*Pointer) IsPOD() bool {
	return false
}

func (*Pointer) IsSimple() bool {
	return false
}
