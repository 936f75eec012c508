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

package any

import (
	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/registry"
)

func boxer(v interface{}) binary.Object {
	switch v := v.(type) {
	case binary.Object:
		return &ObjectBox{Value: v}
	case id.ID:
		return New(v)
	case bool:
		return New(v)
	case uint8:
		return New(v)
	case int8:
		return New(v)
	case uint16:
		return New(v)
	case int16:
		return New(v)
	case float32:
		return New(v)
	case uint32:
		return New(v)
	case int32:
		return New(v)
	case float64:
		return New(v)
	case uint64:
		return New(v)
	case int64:
		return New(v)
	case string:
		return New(v)
	case []byte:
		return New(v)

	case []binary.Object:
		return &ObjectSlice{Value: v}
	case []id.ID:
		return NewSlice(v...)
	case []bool:
		return NewSlice(v...)
	case []int8:
		return NewSlice(v...)
	case []uint16:
		return NewSlice(v...)
	case []int16:
		return NewSlice(v...)
	case []float32:
		return NewSlice(v...)
	case []uint32:
		return NewSlice(v...)
	case []int32:
		return NewSlice(v...)
	case []float64:
		return NewSlice(v...)
	case []uint64:
		return NewSlice(v...)
	case []int64:
		return NewSlice(v...)
	case []string:
		return NewSlice(v...)
	case [][]byte:
		return NewSlice(v...)
	default:
		return nil
	}
}

// Classes returns every class declared by the package.
func Classes() []binary.Class {
	return []binary.Class{
		objectClass, objectSliceClass,
		boolClasses.box, boolClasses.slice,
		int8Classes.box, int8Classes.slice,
		uint8Classes.box, uint8Classes.slice,
		int16Classes.box, int16Classes.slice,
		uint16Classes.box, uint16Classes.slice,
		int32Classes.box, int32Classes.slice,
		uint32Classes.box, uint32Classes.slice,
		int64Classes.box, int64Classes.slice,
		uint64Classes.box, uint64Classes.slice,
		float32Classes.box, float32Classes.slice,
		float64Classes.box, float64Classes.slice,
		stringClasses.box, stringClasses.slice,
		bytesClasses.box, bytesClasses.slice,
		idClasses.box, idClasses.slice,
	}
}

func init() {
	for _, c := range Classes() {
		registry.Global.MustAdd(c)
	}
	binary.RegisterBoxer(boxer)
}
