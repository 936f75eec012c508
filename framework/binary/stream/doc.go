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

// Package stream implements binary.Encoder and binary.Decoder over a
// pod.Writer or pod.Reader.
//
// Object encoding details
//
// An object written with Variant is its type discriminator followed by its
// fields in declaration order. The discriminator depends on the Config:
//
//   ByHash: id [20]byte // The SHA-1 of the entity key, all zero for nil.
//   ByName: key string  // The entity key, empty for nil.
//
// An object written with Struct is just its fields. The reader must already
// know the type.
//
// Every class of a stream uses the same discriminator, so a decoder must be
// configured the same way as the encoder that wrote the stream.
package stream
