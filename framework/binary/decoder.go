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

import "github.com/iburinoc/binobj/core/data/pod"

// Decoder extends Reader with additional methods for decoding objects.
type Decoder interface {
	pod.Reader
	// Entity supports reading a binary.Entity from the stream.
	Entity() *Entity
	// Struct decodes the fields of obj from the stream, with no type
	// preamble.
	Struct(obj Object)
	// Variant decodes and returns an Object from the stream. The Class in the
	// stream must be known to the decoder's namespace. Variant returns nil for
	// the nil discriminator and whenever the decoder is in an error state.
	Variant() Object
	// Lookup returns the class registered for the entity, or nil if the
	// decoder does not know it.
	Lookup(*Entity) Class
	// GetMode gets the current mode of the decoder.
	GetMode() Mode
	// SetMode controls the current mode of the decoder.
	SetMode(mode Mode)
}
