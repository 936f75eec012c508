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

// Object is the interface to any class that wants to be encoded/decoded.
type Object interface {
	// Class returns the serialize information and functionality for this type.
	// The method should be valid on a nil pointer, and must return the same
	// Class on every call.
	Class() Class
}

// Class represents a struct type in the binary registry.
// There is exactly one Class value per concrete type.
type Class interface {
	// Schema returns the type descriptor for the class.
	Schema() *Entity

	// New returns a new, default valued instance of the class.
	New() Object

	// Encode writes the fields of the supplied object to the supplied Encoder.
	// The object must be a type the Class understands. A foreign object fails
	// the encoder with ErrTypeMismatch.
	Encode(Encoder, Object)

	// DecodeTo reads the fields of the supplied object from the supplied
	// Decoder. The object must be a type the Class understands, as returned
	// by New.
	DecodeTo(Decoder, Object)
}

// Mode is the schema detail level of an Encoder or Decoder.
type Mode int

const (
	// Full encodes entities with their display and declared field names.
	Full Mode = iota
	// Compact encodes only what the signature of an entity needs.
	Compact
)

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Compact:
		return "compact"
	default:
		return "unknown"
	}
}
