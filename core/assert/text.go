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
	"strings"
)

// OnString is the result of calling ThatString on an Assertion.
type OnString struct {
	a     *Assertion
	value string
}

// ThatString starts an assertion about the string form of value.
// Byte slices are taken as text and Stringers by their String method.
func (a *Assertion) ThatString(value interface{}) OnString {
	switch v := value.(type) {
	case string:
		return OnString{a, v}
	case []byte:
		return OnString{a, string(v)}
	case fmt.Stringer:
		return OnString{a, v.String()}
	default:
		return OnString{a, fmt.Sprint(v)}
	}
}

// Equals asserts that the string is expect.
func (o OnString) Equals(expect string) bool {
	if o.value == expect {
		return true
	}
	at := 0
	for at < len(o.value) && at < len(expect) && o.value[at] == expect[at] {
		at++
	}
	return o.a.check(false, o.value, fmt.Sprintf("== (differs at byte %d)", at), expect)
}

// NotEquals asserts that the string is not test.
func (o OnString) NotEquals(test string) bool {
	return o.a.check(o.value != test, o.value, "!=", test)
}

// Contains asserts that the string contains substr.
func (o OnString) Contains(substr string) bool {
	return o.a.check(strings.Contains(o.value, substr), o.value, "contains", substr)
}

// DoesNotContain asserts that the string does not contain substr.
func (o OnString) DoesNotContain(substr string) bool {
	return o.a.check(!strings.Contains(o.value, substr), o.value, "does not contain", substr)
}

// HasPrefix asserts that the string starts with prefix.
func (o OnString) HasPrefix(prefix string) bool {
	return o.a.check(strings.HasPrefix(o.value, prefix), o.value, "starts with", prefix)
}

// HasSuffix asserts that the string ends with suffix.
func (o OnString) HasSuffix(suffix string) bool {
	return o.a.check(strings.HasSuffix(o.value, suffix), o.value, "ends with", suffix)
}
