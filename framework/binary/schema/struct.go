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
	"github.com/iburinoc/binobj/framework/binary/metrics"
)

// Struct is the Type descriptor for an binary.Object typed value of a
// statically known class. The value is written inline with no discriminator.
type Struct struct {
	Entity *binary.Entity // The schema entity of the value.
}

func (s *Struct) String() string {
	return fmt.Sprint(s)
}

// Format implements the fmt.Formatter interface
func (s *Struct) Format(f fmt.State, c rune) {
	switch c {
	case 'z': // Private format specifier, supports Entity.Signature
		e := s.Entity
		fmt.Fprint(f, "$", binary.MakeKey(e.Package, e.Identity, e.Version))
	default:
		fmt.Fprint(f, s.Entity.Name())
	}
}

func (s *Struct) EncodeValue(e binary.Encoder, value interface{}) {
	obj, ok := value.(binary.Object)
	if !ok || obj == nil || !obj.Class().Schema().SameAs(s.Entity) {
		e.SetError(binary.ErrTypeMismatch{Type: s.Entity.Key(), Value: value})
		return
	}
	e.Struct(obj)
}

func (s *Struct) DecodeValue(d binary.Decoder) interface{} {
	class := d.Lookup(s.Entity)
	if class == nil {
		metrics.Default.UnknownTypes.Inc()
		d.SetError(binary.ErrUnknownType{Key: s.Entity.Key()})
		return nil
	}
	o := class.New()
	d.Struct(o)
	if d.Error() != nil {
		return nil
	}
	return o
}

func (s *Struct) IsPOD() bool {
	return s.Entity.IsPOD()
}

func (s *Struct) IsSimple() bool {
	return s.Entity.IsSimple()
}
