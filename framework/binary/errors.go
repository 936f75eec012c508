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

package binary

import (
	"fmt"

	"github.com/iburinoc/binobj/core/data/id"
)

// ErrUnknownType is returned when a discriminator names a type that has no
// registered class. It is caused by foreign or newer input, and is always
// recoverable.
type ErrUnknownType struct {
	Key string // The key that was looked up, if known.
	ID  id.ID  // The identifier that was looked up, if no key was known.
}

func (e ErrUnknownType) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("Unknown type %s", e.Key)
	}
	return fmt.Sprintf("Unknown type id %v", e.ID)
}

// ErrDuplicateClass is returned when a different class is added under the key
// of an already registered class.
type ErrDuplicateClass struct {
	Key      string // The contested key.
	Existing string // Signature of the class already registered.
	Added    string // Signature of the class that was rejected.
}

func (e ErrDuplicateClass) Error() string {
	if e.Existing == e.Added {
		return fmt.Sprintf("Class for %s already registered", e.Key)
	}
	return fmt.Sprintf("Class for %s already registered as %s, rejected %s", e.Key, e.Existing, e.Added)
}

// ErrTypeMismatch is returned when a value does not have the Go type its
// declared schema type requires.
type ErrTypeMismatch struct {
	Type  string      // The declared type.
	Value interface{} // The value that did not match.
}

func (e ErrTypeMismatch) Error() string {
	return fmt.Sprintf("Value %v of type %T does not match declared type %s", e.Value, e.Value, e.Type)
}

// ErrUnboxable is returned by Box for a value no Boxer accepts.
type ErrUnboxable struct {
	Value interface{}
}

func (e ErrUnboxable) Error() string {
	return fmt.Sprintf("Value of type %T is not boxable", e.Value)
}

// ErrNotBoxedValue is returned by Unbox for an Object that does not wrap a
// plain value.
type ErrNotBoxedValue struct {
	Object Object
}

func (e ErrNotBoxedValue) Error() string {
	return fmt.Sprintf("Object of type %T is not a boxed value", e.Object)
}
