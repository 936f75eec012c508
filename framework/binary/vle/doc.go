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

// Package vle implements pod.Reader and pod.Writer using a variable
// length encoding format. It is the compact alternative to the fixed-width
// endian codec and is selected with the "vle" codec setting.
//
// Booleans and 8 bit values take a single byte.
//
// Wider unsigned integers take one to nine bytes. The run of one bits at the
// top of the first byte counts the extra bytes that follow; a run shorter
// than eight bits is closed by a zero bit. The value itself is big-endian in
// the bits left over in the first byte followed by the extra bytes.
// The 16 bit value 0xABC is written as:
//
//	byte 0: 1 0 | 0 0 1 0 1 0    one extra byte, high bits 0x0A
//	byte 1: 1 0 1 1 1 1 0 0      low bits 0xBC
//
// Signed integers are zig-zag mapped first, so [0, -1, 1, -2, 2] become
// [0, 1, 2, 3, 4] and small magnitudes of either sign stay short.
//
// Floats are converted to their IEEE bits and byte-reversed before being
// written as unsigned integers, so values with short mantissas such as 1.0 or
// 64.5 stay short.
//
// Strings and byte sequences are a variable length uint32 byte count followed
// by the raw bytes.
package vle
