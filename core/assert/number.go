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

// OnInteger is the result of calling ThatInteger on an Assertion.
type OnInteger struct {
	a     *Assertion
	value int
}

// ThatInteger starts an assertion about an int.
func (a *Assertion) ThatInteger(value int) OnInteger { return OnInteger{a, value} }

func (o OnInteger) Equals(expect int) bool  { return o.a.check(o.value == expect, o.value, "==", expect) }
func (o OnInteger) NotEquals(test int) bool { return o.a.check(o.value != test, o.value, "!=", test) }
func (o OnInteger) IsAtLeast(min int) bool  { return o.a.check(o.value >= min, o.value, ">=", min) }
func (o OnInteger) IsAtMost(max int) bool   { return o.a.check(o.value <= max, o.value, "<=", max) }

// IsBetween asserts that min <= value <= max.
func (o OnInteger) IsBetween(min, max int) bool {
	return o.a.check(o.value >= min && o.value <= max, o.value, "in", min, max)
}

// OnBoolean is the result of calling ThatBoolean on an Assertion.
type OnBoolean struct {
	a     *Assertion
	value bool
}

// ThatBoolean starts an assertion about a bool.
func (a *Assertion) ThatBoolean(value bool) OnBoolean { return OnBoolean{a, value} }

func (o OnBoolean) Equals(expect bool) bool { return o.a.check(o.value == expect, o.value, "==", expect) }
func (o OnBoolean) IsTrue() bool            { return o.Equals(true) }
func (o OnBoolean) IsFalse() bool           { return o.Equals(false) }
