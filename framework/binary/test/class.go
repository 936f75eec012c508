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

import (
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/registry"
)

// Namespace holds every class declared by this package, layered over
// registry.Global.
var Namespace = registry.NewNamespace(registry.Global)

// class is a binary.Class for the Go type T, encoded by hand the way a
// generator would emit it.
type class[T any, PT interface {
	*T
	binary.Object
}] struct {
	entity *binary.Entity
	create func() binary.Object
	encode func(binary.Encoder, *T)
	decode func(binary.Decoder, *T)
}

func (c *class[T, PT]) Schema() *binary.Entity { return c.entity }
func (c *class[T, PT]) New() binary.Object     { return c.create() }

func (c *class[T, PT]) Encode(e binary.Encoder, obj binary.Object) {
	p, ok := obj.(PT)
	o := (*T)(p)
	if !ok || o == nil {
		e.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	c.encode(e, o)
}

func (c *class[T, PT]) DecodeTo(d binary.Decoder, obj binary.Object) {
	p, ok := obj.(PT)
	o := (*T)(p)
	if !ok || o == nil {
		d.SetError(binary.ErrTypeMismatch{Type: c.entity.Key(), Value: obj})
		return
	}
	c.decode(d, o)
}
