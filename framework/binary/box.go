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

package binary

import (
	"sync"
	"sync/atomic"
)

// Boxer wraps a plain value as an Object. It returns nil for values it
// does not handle.
type Boxer func(interface{}) Object

// Unboxer is implemented by Objects that wrap a single plain value.
type Unboxer interface {
	Unbox() interface{}
}

var (
	boxersMu sync.Mutex
	boxers   atomic.Pointer[[]Boxer]
)

// RegisterBoxer adds b to the boxers that Box tries, in registration order.
func RegisterBoxer(b Boxer) {
	boxersMu.Lock()
	defer boxersMu.Unlock()
	var list []Boxer
	if old := boxers.Load(); old != nil {
		list = append(list, *old...)
	}
	list = append(list, b)
	boxers.Store(&list)
}

// Box wraps v in the Object of the first registered Boxer that accepts it.
// A nil v boxes to a nil Object. A value no Boxer accepts fails with
// ErrUnboxable.
func Box(v interface{}) (Object, error) {
	if v == nil {
		return nil, nil
	}
	if list := boxers.Load(); list != nil {
		for _, b := range *list {
			if o := b(v); o != nil {
				return o, nil
			}
		}
	}
	return nil, ErrUnboxable{Value: v}
}

// Unbox returns the plain value wrapped by o.
// A nil o unboxes to nil. An Object that is not an Unboxer fails with
// ErrNotBoxedValue.
func Unbox(o Object) (interface{}, error) {
	switch o := o.(type) {
	case nil:
		return nil, nil
	case Unboxer:
		return o.Unbox(), nil
	default:
		return nil, ErrNotBoxedValue{Object: o}
	}
}
