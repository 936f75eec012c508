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

package assert

import (
	"github.com/pkg/errors"
)

// OnError is the result of calling ThatError on an Assertion.
type OnError struct {
	a   *Assertion
	err error
}

// ThatError starts an assertion about an error.
func (a *Assertion) ThatError(err error) OnError { return OnError{a, err} }

// Succeeded asserts that the error is nil.
func (o OnError) Succeeded() bool { return o.a.check(o.err == nil, o.err, "success") }

// Failed asserts that the error is not nil.
func (o OnError) Failed() bool { return o.a.check(o.err != nil, o.err, "failure") }

// Equals asserts that the error is == expect.
func (o OnError) Equals(expect error) bool {
	return o.a.check(o.err == expect, o.err, "==", expect)
}

// HasMessage asserts that the error is not nil and reads exactly expect.
func (o OnError) HasMessage(expect string) bool {
	return o.a.check(o.err != nil && o.err.Error() == expect, o.err, "message", expect)
}

// HasCause asserts that errors.Cause of the error is expect.
func (o OnError) HasCause(expect error) bool {
	return o.a.check(o.err != nil && errors.Cause(o.err) == expect, o.err, "cause", expect)
}
