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
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// OnSlice is the result of calling ThatSlice on an Assertion.
type OnSlice struct {
	a     *Assertion
	value reflect.Value
}

// ThatSlice starts an assertion about a slice or array.
func (a *Assertion) ThatSlice(slice interface{}) OnSlice {
	v := reflect.ValueOf(slice)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		panic(fmt.Errorf("ThatSlice given %T", slice))
	}
	return OnSlice{a, v}
}

func (o OnSlice) IsEmpty() bool    { return o.IsLength(0) }
func (o OnSlice) IsNotEmpty() bool { return o.a.check(o.value.Len() > 0, o.value, "is not empty") }

// IsLength asserts that the slice holds exactly length elements.
func (o OnSlice) IsLength(length int) bool {
	return o.a.check(o.value.Len() == length, o.value.Len(), "length ==", length)
}

// Equals asserts that the slice has the same length as expected and that
// each element is == its counterpart.
func (o OnSlice) Equals(expected interface{}) bool {
	e := reflect.ValueOf(expected)
	if o.value.Len() != e.Len() {
		return o.a.check(false, o.value, fmt.Sprintf("length %d ==", e.Len()), expected)
	}
	for i := 0; i < e.Len(); i++ {
		got, want := o.value.Index(i).Interface(), e.Index(i).Interface()
		if got != want {
			return o.a.check(false, o.value, fmt.Sprintf("[%d] %v ==", i, got), want)
		}
	}
	return true
}

// DeepEquals asserts that the slice matches expected with cmp.
func (o OnSlice) DeepEquals(expected interface{}, opts ...cmp.Option) bool {
	return o.a.diff(o.value.Interface(), expected, opts)
}

// OnMap is the result of calling ThatMap on an Assertion.
type OnMap struct {
	a     *Assertion
	value reflect.Value
}

// ThatMap starts an assertion about a map.
func (a *Assertion) ThatMap(m interface{}) OnMap {
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Map {
		panic(fmt.Errorf("ThatMap given %T", m))
	}
	return OnMap{a, v}
}

func (o OnMap) IsEmpty() bool { return o.IsLength(0) }

// IsLength asserts that the map holds exactly length entries.
func (o OnMap) IsLength(length int) bool {
	return o.a.check(o.value.Len() == length, o.value.Len(), "length ==", length)
}

// Equals asserts that the map has the same keys as expected and that each
// value is == its counterpart.
func (o OnMap) Equals(expected interface{}) bool {
	e := reflect.ValueOf(expected)
	if o.value.Len() != e.Len() {
		return o.a.check(false, o.value, fmt.Sprintf("length %d ==", e.Len()), expected)
	}
	for _, k := range e.MapKeys() {
		got := o.value.MapIndex(k)
		if !got.IsValid() || got.Interface() != e.MapIndex(k).Interface() {
			return o.a.check(false, o.value, fmt.Sprintf("[%v] ==", k), e.MapIndex(k))
		}
	}
	return true
}

// DeepEquals asserts that the map matches expected with cmp.
func (o OnMap) DeepEquals(expected interface{}, opts ...cmp.Option) bool {
	return o.a.diff(o.value.Interface(), expected, opts)
}
