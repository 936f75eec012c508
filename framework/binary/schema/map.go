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
	"sort"

	"github.com/iburinoc/binobj/framework/binary"
)

// Map is the Type descriptor for key/value stores.
type Map struct {
	Alias     string      // The alias this array type was given, if present
	KeyType   binary.Type // The key type used.
	ValueType binary.Type // The value type stored in the map.
}

func (m *Map) String() string {
	return fmt.Sprint(m)
}

// Format implements the fmt.Formatter interface
func (m *Map) Format(f fmt.State, c rune) {
	switch {
	case c == 'z': // Private format specifier, supports Entity.Signature
		fmt.Fprintf(f, "map[%z]%z", m.KeyType, m.ValueType)
	case m.Alias != "":
		fmt.Fprint(f, m.Alias)
	default:
		fmt.Fprintf(f, "map[%v]%v", m.KeyType, m.ValueType)
	}
}

func (m *Map) EncodeValue(e binary.Encoder, value interface{}) {
	v, ok := value.(map[interface{}]interface{})
	if !ok && value != nil {
		e.SetError(binary.ErrTypeMismatch{Type: m.String(), Value: value})
		return
	}
	keys := make([]interface{}, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	e.Uint32(uint32(len(v)))
	for _, k := range keys {
		m.KeyType.EncodeValue(e, k)
		m.ValueType.EncodeValue(e, v[k])
	}
}

func (m *Map) DecodeValue(d binary.Decoder) interface{} {
	count := d.Count()
	if d.Error() != nil || !checkCount(d, count, m.KeyType, m.ValueType) {
		return nil
	}
	v := make(map[interface{}]interface{}, prealloc(count))
	for i := uint32(0); i < count; i++ {
		k := m.KeyType.DecodeValue(d)
		o := m.ValueType.DecodeValue(d)
		if d.Error() != nil {
			return nil
		}
		if !hashable(k) {
			d.SetError(fmt.Errorf("Map key of type %T is not hashable", k))
			return nil
		}
		v[k] = o
	}
	return v
}

func (*Map) IsPOD() bool {
	return false
}

func (m *Map) IsSimple() bool {
	return m.KeyType.IsPOD() && m.ValueType.IsPOD()
}
