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
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// OnValue is the result of calling That on an Assertion.
type OnValue struct {
	a     *Assertion
	value interface{}
}

// That starts an assertion about an arbitrary value.
func (a *Assertion) That(value interface{}) OnValue { return OnValue{a, value} }

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch r := reflect.ValueOf(v); r.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return r.IsNil()
	}
	return false
}

// IsNil asserts that the value is nil, including typed nils.
func (o OnValue) IsNil() bool { return o.a.check(isNil(o.value), o.value, "is nil") }

// IsNotNil asserts that the value is not nil.
func (o OnValue) IsNotNil() bool { return o.a.check(!isNil(o.value), o.value, "is not nil") }

// Equals asserts that the value is == expect.
func (o OnValue) Equals(expect interface{}) bool {
	return o.a.check(o.value == expect, o.value, "==", expect)
}

// NotEquals asserts that the value is != test.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.a.check(o.value != test, o.value, "!=", test)
}

// DeepEquals asserts that the value matches expect with cmp, looking through
// unexported fields and treating nil and empty collections as equal.
func (o OnValue) DeepEquals(expect interface{}, opts ...cmp.Option) bool {
	return o.a.diff(o.value, expect, opts)
}

// DeepNotEquals asserts that the value does not match test with cmp.
func (o OnValue) DeepNotEquals(test interface{}, opts ...cmp.Option) bool {
	return o.a.check(!cmp.Equal(o.value, test, deep(opts)...), o.value, "deep !=", test)
}
