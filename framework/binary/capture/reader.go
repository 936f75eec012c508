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

package capture

import (
	"context"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/metrics"
	"github.com/iburinoc/binobj/framework/binary/registry"
	"github.com/iburinoc/binobj/framework/binary/schema"
	"github.com/iburinoc/binobj/framework/binary/stream"
)

// ReaderOptions control how a capture is read.
type ReaderOptions struct {
	// Fallback resolves the classes of declared entities. Defaults to
	// registry.Global.
	Fallback *registry.Namespace
	// Dynamic decodes every object as a schema.Object, ignoring Fallback.
	Dynamic bool
}

// Reader reads objects from a capture.
type Reader struct {
	ctx       context.Context
	zr        *zstd.Decoder
	dec       *stream.Decoder
	namespace *registry.Namespace
	entities  []*binary.Entity
	byKey     map[string]*binary.Entity
	flags     Flags
	done      bool
}

// NewReader reads the capture header from r and returns a Reader for the
// body. Closing the Reader does not close r.
func NewReader(ctx context.Context, r io.Reader, opts ReaderOptions) (*Reader, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, log.Err(ctx, err, "Reading capture")
	}
	out := &Reader{ctx: ctx, byKey: map[string]*binary.Entity{}, flags: h.flags}
	if opts.Dynamic {
		out.namespace = registry.NewNamespace()
	} else if opts.Fallback != nil {
		out.namespace = registry.NewNamespace(opts.Fallback)
	} else {
		out.namespace = registry.NewNamespace(registry.Global)
	}
	body := r
	if h.flags&FlagZstd != 0 {
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, log.Err(ctx, err, "Creating zstd reader")
		}
		out.zr = zr
		body = zr
	}
	cfg := h.config()
	cfg.Namespace = out.namespace
	out.dec = stream.NewDecoder(body, cfg)
	return out, nil
}

// Flags returns the flags from the capture header.
func (r *Reader) Flags() Flags { return r.flags }

// Entities returns the entities declared so far, in declaration order.
func (r *Reader) Entities() []*binary.Entity { return r.entities }

// Namespace returns the namespace objects of the capture are resolved in.
func (r *Reader) Namespace() *registry.Namespace { return r.namespace }

// Next returns the next object of the capture, which may be nil.
// It returns io.EOF after the end record.
func (r *Reader) Next() (binary.Object, error) {
	for {
		if r.done {
			return nil, io.EOF
		}
		if err := r.dec.Error(); err != nil {
			return nil, err
		}
		tag := r.dec.Uint8()
		if err := r.dec.Error(); err != nil {
			return nil, r.failed(err, "Reading record tag")
		}
		switch tag {
		case tagEnd:
			r.done = true
		case tagEntity:
			if err := r.entity(); err != nil {
				return nil, err
			}
		case tagObject:
			obj := r.dec.Variant()
			if err := r.dec.Error(); err != nil {
				return nil, r.failed(err, "Reading object")
			}
			metrics.Default.ObjectsDecoded.Inc()
			metrics.Default.CaptureRecords.WithLabelValues("read", "object").Inc()
			return obj, nil
		default:
			err := errors.Errorf("Unknown record tag %d", tag)
			r.dec.SetError(err)
			return nil, r.failed(err, "Reading capture")
		}
	}
}

func (r *Reader) failed(err error, msg string) error {
	metrics.Default.DecodeErrors.WithLabelValues(metrics.Kind(err)).Inc()
	return log.Err(r.ctx, err, msg)
}

// entity reads an entity record and registers a class for it.
func (r *Reader) entity() error {
	e := &binary.Entity{}
	schema.DecodeEntity(r.dec, e, func(key string) *binary.Entity {
		if key == binary.MakeKey(e.Package, e.Identity, e.Version) {
			return e
		}
		return r.resolve(key)
	})
	if err := r.dec.Error(); err != nil {
		return r.failed(err, "Reading entity")
	}
	key := e.Key()
	if _, dup := r.byKey[key]; dup {
		err := errors.Errorf("Entity %s declared twice", key)
		r.dec.SetError(err)
		return r.failed(err, "Reading entity")
	}
	r.byKey[key] = e
	r.entities = append(r.entities, e)
	metrics.Default.CaptureRecords.WithLabelValues("read", "entity").Inc()

	ctx := log.V{"entity": key}.Bind(r.ctx)
	if known, err := r.namespace.Lookup(key); err == nil {
		if known.Schema().Signature() == e.Signature() {
			log.D(ctx, "Using compiled class")
			return nil
		}
		log.W(ctx, "Compiled class %z differs from captured %z, decoding dynamically", known.Schema(), e)
	}
	return r.namespace.Add(schema.NewClass(e))
}

// resolve returns the entity for key, or a forward reference to it if it
// has not been declared yet.
func (r *Reader) resolve(key string) *binary.Entity {
	if e, found := r.byKey[key]; found {
		return e
	}
	if class, err := r.namespace.Lookup(key); err == nil {
		return class.Schema()
	}
	return forward(key)
}

// forward returns an entity with no fields whose key is key.
func forward(key string) *binary.Entity {
	version := ""
	if i := strings.LastIndex(key, "@"); i >= 0 {
		key, version = key[:i], key[i+1:]
	}
	pkg, identity := "", key
	if i := strings.LastIndex(key, "."); i >= 0 {
		pkg, identity = key[:i], key[i+1:]
	}
	return &binary.Entity{Package: pkg, Identity: identity, Version: version}
}

// Close releases the resources of the reader.
func (r *Reader) Close() {
	if r.zr != nil {
		r.zr.Close()
		r.zr = nil
	}
}

// ReadAll reads every object of a capture.
func ReadAll(ctx context.Context, in io.Reader, opts ReaderOptions) ([]binary.Object, []*binary.Entity, error) {
	r, err := NewReader(ctx, in, opts)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	objects := []binary.Object{}
	for {
		obj, err := r.Next()
		if err == io.EOF {
			return objects, r.Entities(), nil
		}
		if err != nil {
			return nil, nil, err
		}
		objects = append(objects, obj)
	}
}
