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

// Any is the Type of a field holding an arbitrary plain value. The value is
// boxed and written as a Variant, and unboxed again on decode.
type Any struct{}

func (a *Any) String() string { return fmt.Sprint(a) }

// Format writes "~" for the 'z' verb and "<any>" otherwise.
func (*Any) Format(f fmt.State, c rune) {
	if c == 'z' {
		fmt.Fprint(f, "~")
		return
	}
	fmt.Fprint(f, "<any>")
}

func (*Any) EncodeValue(e binary.Encoder, value interface{}) {
	boxed, err := binary.Box(value)
	if err != nil {
		e.SetError(err)
		return
	}
	e.Variant(boxed)
}

func (*Any) DecodeValue(d binary.Decoder) interface{} {
	boxed := d.Variant()
	if boxed == nil || d.Error() != nil {
		return nil
	}
	v, err := binary.Unbox(boxed)
	if err != nil {
		d.SetError(err)
	}
	return v
}

func (*Any) IsPOD() bool    { return false }
func (*Any) IsSimple() bool { return false }
