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
	"bytes"
	"context"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/metrics"
	"github.com/iburinoc/binobj/framework/binary/schema"
	"github.com/iburinoc/binobj/framework/binary/stream"
)

// Options control how a capture is written.
type Options struct {
	// Config selects the codec, byte order and discriminator of the body.
	// Its Mode and Namespace are ignored.
	Config stream.Config
	// Compress compresses the body with zstd.
	Compress bool
}

// Writer writes objects to a capture.
type Writer struct {
	ctx      context.Context
	zw       *zstd.Encoder
	counter  *counter
	enc      *stream.Encoder
	cfg      stream.Config
	declared map[string]bool
	scratch  bytes.Buffer
	closed   bool
}

type counter struct {
	w io.Writer
	n int64
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// NewWriter writes the capture header to w and returns a Writer for the
// body. The Writer must be closed to complete the capture. Closing it does
// not close w.
func NewWriter(ctx context.Context, w io.Writer, opts Options) (*Writer, error) {
	h := header{version: Version, flags: flagsOf(opts.Config, opts.Compress)}
	if err := h.write(w); err != nil {
		return nil, log.Err(ctx, err, "Writing capture header")
	}
	out := &Writer{
		ctx:      ctx,
		cfg:      h.config(),
		declared: map[string]bool{},
	}
	body := w
	if opts.Compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, log.Err(ctx, err, "Creating zstd writer")
		}
		out.zw = zw
		body = zw
	}
	out.counter = &counter{w: body}
	out.enc = stream.NewEncoder(out.counter, out.cfg)
	log.D(ctx, "Writing capture with flags %#x", uint8(h.flags))
	return out, nil
}

// Write appends obj to the capture, preceded by the entities of any classes
// it uses that have not been declared yet.
// If obj cannot be encoded nothing is written and the capture remains usable.
func (w *Writer) Write(obj binary.Object) error {
	if w.closed {
		return errors.New("Write to closed capture")
	}
	if err := w.enc.Error(); err != nil {
		return err
	}
	w.scratch.Reset()
	pending := []*binary.Entity{}
	scratch := stream.NewEncoder(&w.scratch, w.cfg)
	scratch.OnClass = func(c binary.Class) { pending = append(pending, c.Schema()) }
	scratch.Variant(obj)
	if err := scratch.Error(); err != nil {
		metrics.Default.EncodeErrors.WithLabelValues(metrics.Kind(err)).Inc()
		return log.Errf(w.ctx, err, "Encoding %v", obj)
	}
	for _, e := range pending {
		w.declare(e)
	}
	w.enc.Uint8(tagObject)
	w.enc.Data(w.scratch.Bytes())
	if err := w.enc.Error(); err != nil {
		return log.Err(w.ctx, err, "Writing object record")
	}
	metrics.Default.ObjectsEncoded.Inc()
	metrics.Default.CaptureRecords.WithLabelValues("write", "object").Inc()
	return nil
}

// declare writes the entity record for e, after those of the struct types
// its fields refer to.
func (w *Writer) declare(e *binary.Entity) {
	key := e.Key()
	if w.declared[key] {
		return
	}
	w.declared[key] = true
	for _, f := range e.Fields {
		w.declareType(f.Type)
	}
	log.D(w.ctx, "Declaring %v", e)
	w.enc.Uint8(tagEntity)
	w.enc.Entity(e)
	metrics.Default.CaptureRecords.WithLabelValues("write", "entity").Inc()
}

func (w *Writer) declareType(t binary.Type) {
	switch t := t.(type) {
	case *schema.Struct:
		w.declare(t.Entity)
	case *schema.Pointer:
		w.declareType(t.Type)
	case *schema.Slice:
		w.declareType(t.ValueType)
	case *schema.Array:
		w.declareType(t.ValueType)
	case *schema.Map:
		w.declareType(t.KeyType)
		w.declareType(t.ValueType)
	}
}

// Close writes the end record and flushes the body.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.enc.Uint8(tagEnd)
	err := w.enc.Error()
	if w.zw != nil {
		if cerr := w.zw.Close(); err == nil {
			err = cerr
		}
	}
	metrics.Default.CaptureBytes.WithLabelValues("write").Add(float64(w.counter.n))
	if err != nil {
		return log.Err(w.ctx, err, "Closing capture")
	}
	return nil
}
