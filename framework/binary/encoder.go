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

// Encoder extends Writer with additional methods for encoding objects.
type Encoder interface {
	pod.Writer
	// Entity writes a binary.Entity to the stream.
	// The Mode of the encoder controls how much of the entity is written.
	Entity(e *Entity)
	// Struct encodes the fields of obj with no type preamble.
	Struct(obj Object)
	// Variant encodes the type discriminator of obj followed by its fields.
	// A nil obj is encoded as the nil discriminator.
	Variant(obj Object)
	// GetMode gets the current mode of the encoder.
	GetMode() Mode
	// SetMode controls the current mode of the encoder.
	SetMode(mode Mode)
}
