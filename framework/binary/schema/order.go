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
	"bytes"
	"fmt"
	"reflect"

	"github.com/iburinoc/binobj/core/data/id"
)

// less orders two map keys of the same schema type, so maps are always
// written in the same order.
func less(a, b interface{}) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch vb.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return va.Int() < vb.Int()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch vb.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return va.Uint() < vb.Uint()
		}
	case reflect.Float32, reflect.Float64:
		switch vb.Kind() {
		case reflect.Float32, reflect.Float64:
			return va.Float() < vb.Float()
		}
	case reflect.Bool:
		if vb.Kind() == reflect.Bool {
			return !va.Bool() && vb.Bool()
		}
	case reflect.String:
		if vb.Kind() == reflect.String {
			return va.String() < vb.String()
		}
	}
	if ia, ok := a.(id.ID); ok {
		if ib, ok := b.(id.ID); ok {
			return bytes.Compare(ia[:], ib[:]) < 0
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

// hashable returns true if k can be used as a map key.
func hashable(k interface{}) bool {
	return k == nil || reflect.TypeOf(k).Comparable()
}
