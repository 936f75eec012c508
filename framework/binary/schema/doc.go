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

// Package schema holds the Type variants of the schema model, their binary
// form, and ObjectClass, a Class driven entirely by an Entity.
//
// Each Type has a fixed Go shape for the values it encodes and decodes:
//
//	Primitive  the matching Go scalar, []byte for Bytes, id.ID for ID
//	Struct     binary.Object of the referenced entity
//	Pointer    nil or a value of the pointed to type
//	Interface  binary.Object of any registered class, or nil
//	Any        a boxable scalar, or nil
//	Slice      []interface{}
//	Array      []interface{} of the declared size
//	Map        map[interface{}]interface{}, written in sorted key order
//
// A value of any other shape fails the encoder with binary.ErrTypeMismatch.
package schema
