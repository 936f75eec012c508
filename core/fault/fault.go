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

// Package fault holds the error primitives shared by the rest of the module.
package fault

import "github.com/pkg/errors"

// Const is the type for constant error values.
type Const string

// Error implements error for Const returning the string value of the const.
func (e Const) Error() string { return string(e) }

// Is reports whether target is the root cause of err.
// err may have been wrapped any number of times with errors.Wrap.
func Is(err error, target error) bool {
	if err == nil {
		return target == nil
	}
	return errors.Cause(err) == target
}

// One collects only the first error it is given.
type One struct{ err error }

// First returns the first error collected.
func (o *One) First() error { return o.err }

// Collect records err if no error has been collected yet.
// Collecting a nil error is a no-op.
func (o *One) Collect(err error) {
	if o.err == nil {
		o.err = err
	}
}
