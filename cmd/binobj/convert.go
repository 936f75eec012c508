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

package main

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

// native converts a decoded value into plain maps, slices and scalars that
// both structpb and cbor accept.
// Objects become maps with their key under "$type".
func native(v interface{}) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case *schema.Object:
		if v == nil {
			return nil
		}
		e := v.Class().Schema()
		m := map[string]interface{}{"$type": e.Key()}
		for i, f := range e.Fields {
			if i < len(v.Fields) {
				m[f.Name()] = native(v.Fields[i])
			}
		}
		return m
	case binary.Object:
		if u, err := binary.Unbox(v); err == nil {
			return map[string]interface{}{
				"$type": v.Class().Schema().Key(),
				"Value": native(u),
			}
		}
		return map[string]interface{}{
			"$type":  v.Class().Schema().Key(),
			"$value": fmt.Sprint(v),
		}
	case []binary.Object:
		out := make([]interface{}, len(v))
		for i, o := range v {
			out[i] = native(o)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = native(e)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = native(e)
		}
		return out
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint:
		return uint64(v)
	case float32:
		return float64(v)
	case id.ID:
		return v.String()
	case []byte:
		return slices.Clone(v)
	case bool, int64, uint64, float64, string:
		return v
	default:
		if r := reflect.ValueOf(v); r.Kind() == reflect.Slice {
			out := make([]interface{}, r.Len())
			for i := range out {
				out[i] = native(r.Index(i).Interface())
			}
			return out
		}
		return fmt.Sprint(v)
	}
}
