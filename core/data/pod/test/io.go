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

package test

// Bytes is an io.Reader that returns ReadError once Data is exhausted.
type Bytes struct {
	Data []byte
}

func (b *Bytes) Read(p []byte) (int, error) {
	if len(b.Data) == 0 {
		return 0, ReadError
	}
	n := copy(p, b.Data)
	b.Data = b.Data[n:]
	return n, nil
}

// LimitedWriter is an io.Writer that accepts at most Limit bytes.
// A write that starts at the limit fails with WriteError, a write that
// crosses it is short.
type LimitedWriter struct {
	Limit int
}

func (w *LimitedWriter) Write(p []byte) (int, error) {
	if w.Limit <= 0 {
		return 0, WriteError
	}
	n := len(p)
	if n > w.Limit {
		n = w.Limit
	}
	w.Limit -= n
	return n, nil
}
