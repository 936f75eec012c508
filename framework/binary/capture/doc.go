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

// Package capture reads and writes self describing files of objects.
//
// A capture starts with a fixed header:
//
//   magic   [4]byte // "BOBJ"
//   version uint8   // Version
//   flags   uint8   // FlagZstd | FlagVLE | FlagBigEndian | FlagByName
//
// The rest of the file, zstd compressed when FlagZstd is set, is a sequence
// of records, each starting with a tag byte:
//
//   1: entity // The full form of an entity, see schema.EncodeEntity.
//   2: object // An object written as a Variant.
//   0: end    // The end of the capture.
//
// Every class of an object is declared by an entity record before the
// object, together with the struct types its fields refer to. A reader can
// therefore decode a capture without compiled knowledge of its types.
package capture
