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

// Package binary defines the contract for schema-described polymorphic
// objects and the streams that carry them.
//
// An Object reports its Class. A Class is the one per-type descriptor that
// holds the type's Entity (its schema), a factory for fresh instances, and
// the functions that write and read the instance's fields. Classes are
// registered in a registry.Namespace under the key of their Entity, so a
// Decoder can turn a discriminator read from the stream back into a concrete
// Object without compile-time knowledge of the type.
//
// The binary package defines a POD type as something with fixed size and
// layout. This allows all primitive types, fixed size arrays of POD types, and
// structures that contain only POD types.
// A Simple type is allowed more structure than a POD type, it may vary in
// size, which allows slices and maps, but must be of known type and not be
// able to contain cycles (thus no pointers, interfaces or slices of slices).
//
// binary.Encoder and binary.Decoder extend the pod.Writer and pod.Reader
// interfaces with a symmetrical pair of methods for encoding and decoding
// objects. The stream package implements them.
package binary
