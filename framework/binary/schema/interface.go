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

// Interface is the Type descriptor for a field who's underlying type is
// dynamic. The value is written with binary.Encoder.Variant and resolved
// through the decoder's namespace.
type Interface struct {
	Name string // The simple name of the type, not set in compact form.
}

func (i *Interface) String() string {
	return fmt.Sprint(i)
}

// Format implements the fmt.Formatter interface
func (i *Interface) Format(f fmt.State, c rune) {
	switch {
	case c == 'z': // Private format specifier, supports Entity.Signature
		fmt.Fprint(f, "?")
	case i.Name != "":
		fmt.Fprint(f, i.Name)
	default:
		fmt.Fprint(f, "<interface>")
	}
}

func (i *Interface) EncodeValue(e binary.Encoder, value interface{}) {
	if value == nil {
		e.Variant(nil)
		return
	}
	obj, ok := value.(binary.Object)
	if !ok {
		e.SetError(binary.ErrTypeMismatch{Type: i.String(), Value: value})
		return
	}
	e.Variant(obj)
}

func (i *Interface) DecodeValue(d binary.Decoder) interface{} {
	if o := d.Variant(); o != nil {
		return o
	}
	return nil
}

func (*Interface) IsPOD() bool {
	return false
}

func (*Interface) IsSimple() bool {
	return false
}
