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
	"io"

	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/schema"
)

// Encoder implements binary.Encoder.
type Encoder struct {
	pod.Writer
	discriminator Discriminator
	mode          binary.Mode
	seen          map[string]bool
	depth         int

	// OnClass, if not nil, is called the first time the encoder writes an
	// object of each class, before the object's fields.
	OnClass func(binary.Class)
}

// NewEncoder returns an Encoder that writes to w using cfg.
func NewEncoder(w io.Writer, cfg Config) *Encoder {
	return &Encoder{
		Writer:        cfg.writer(w),
		discriminator: cfg.Discriminator,
		mode:          cfg.Mode,
		seen:          map[string]bool{},
	}
}

var _ binary.Encoder = (*Encoder)(nil)

var nilID id.ID

// Entity implements binary.Encoder.
func (e *Encoder) Entity(entity *binary.Entity) {
	if entity == nil {
		e.SetError(errors.New("Encode nil entity"))
		return
	}
	schema.EncodeEntity(e, entity)
}

// Struct implements binary.Encoder.
func (e *Encoder) Struct(obj binary.Object) {
	if e.Error() != nil {
		return
	}
	if obj == nil {
		e.SetError(errors.New("Encode nil struct"))
		return
	}
	class := obj.Class()
	e.note(class)
	class.Encode(e, obj)
}

// Variant implements binary.Encoder.
func (e *Encoder) Variant(obj binary.Object) {
	if e.Error() != nil {
		return
	}
	if obj == nil {
		e.discriminate(nil)
		return
	}
	class := obj.Class()
	e.discriminate(class.Schema())
	if !e.enter() {
		return
	}
	defer e.leave()
	e.note(class)
	class.Encode(e, obj)
}

// enter fails once nesting reaches the depth the decoder accepts, which also
// stops cyclic object graphs.
func (e *Encoder) enter() bool {
	if e.depth >= maxDepth {
		e.SetError(errors.Errorf("Object nesting deeper than %d", maxDepth))
		return false
	}
	e.depth++
	return true
}

func (e *Encoder) leave() { e.depth-- }

func (e *Encoder) discriminate(entity *binary.Entity) {
	switch e.discriminator {
	case ByName:
		if entity == nil {
			e.String("")
		} else {
			e.String(entity.Key())
		}
	default:
		if entity == nil {
			e.Data(nilID[:])
		} else {
			ident := entity.ID()
			e.Data(ident[:])
		}
	}
}

func (e *Encoder) note(class binary.Class) {
	if e.OnClass == nil {
		return
	}
	key := class.Schema().Key()
	if !e.seen[key] {
		e.seen[key] = true
		e.OnClass(class)
	}
}

// GetMode implements binary.Encoder.
func (e *Encoder) GetMode() binary.Mode { return e.mode }

// SetMode implements binary.Encoder.
func (e *Encoder) SetMode(mode binary.Mode) { e.mode = mode }
