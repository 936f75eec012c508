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

package stream

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/metrics"
	"github.com/iburinoc/binobj/framework/binary/registry"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

// maxDepth bounds the nesting of objects read from a stream.
const maxDepth = 256

// Decoder implements binary.Decoder.
type Decoder struct {
	pod.Reader
	discriminator Discriminator
	mode          binary.Mode
	namespace     *registry.Namespace
	depth         int
}

// NewDecoder returns a Decoder that reads from r using cfg.
func NewDecoder(r io.Reader, cfg Config) *Decoder {
	return &Decoder{
		Reader:        cfg.reader(r),
		discriminator: cfg.Discriminator,
		mode:          cfg.Mode,
		namespace:     cfg.namespace(),
	}
}

var _ binary.Decoder = (*Decoder)(nil)

// Entity implements binary.Decoder.
// Struct field types are resolved against the decoder's namespace, or the
// entity being decoded for a type that refers to itself.
func (d *Decoder) Entity() *binary.Entity {
	entity := &binary.Entity{}
	schema.DecodeEntity(d, entity, func(key string) *binary.Entity {
		if key == binary.MakeKey(entity.Package, entity.Identity, entity.Version) {
			return entity
		}
		if class, err := d.namespace.Lookup(key); err == nil {
			return class.Schema()
		}
		return nil
	})
	if d.Error() != nil {
		return nil
	}
	return entity
}

// Struct implements binary.Decoder.
func (d *Decoder) Struct(obj binary.Object) {
	if d.Error() != nil {
		return
	}
	if obj == nil {
		d.SetError(errors.New("Decode into nil struct"))
		return
	}
	if !d.enter() {
		return
	}
	defer d.leave()
	obj.Class().DecodeTo(d, obj)
}

// Variant implements binary.Decoder.
func (d *Decoder) Variant() binary.Object {
	if d.Error() != nil {
		return nil
	}
	class := d.discriminated()
	if class == nil || !d.enter() {
		return nil
	}
	defer d.leave()
	obj := class.New()
	class.DecodeTo(d, obj)
	if d.Error() != nil {
		return nil
	}
	return obj
}

// discriminated reads a type discriminator and returns its class.
// It returns nil for the nil discriminator and on failure.
func (d *Decoder) discriminated() binary.Class {
	var class binary.Class
	var err error
	switch d.discriminator {
	case ByName:
		key := d.String()
		if d.Error() != nil || key == "" {
			return nil
		}
		class, err = d.namespace.Lookup(key)
	default:
		ident := id.ID{}
		d.Data(ident[:])
		if d.Error() != nil || !ident.IsValid() {
			return nil
		}
		class, err = d.namespace.LookupID(ident)
	}
	if err != nil {
		metrics.Default.UnknownTypes.Inc()
		d.SetError(err)
		return nil
	}
	return class
}

func (d *Decoder) enter() bool {
	if d.depth >= maxDepth {
		d.SetError(fmt.Errorf("Object nesting deeper than %d", maxDepth))
		return false
	}
	d.depth++
	return true
}

func (d *Decoder) leave() { d.depth-- }

// Lookup implements binary.Decoder.
func (d *Decoder) Lookup(entity *binary.Entity) binary.Class {
	class, err := d.namespace.Lookup(entity.Key())
	if err != nil {
		return nil
	}
	return class
}

// GetMode implements binary.Decoder.
func (d *Decoder) GetMode() binary.Mode { return d.mode }

// SetMode implements binary.Decoder.
func (d *Decoder) SetMode(mode binary.Mode) { d.mode = mode }
