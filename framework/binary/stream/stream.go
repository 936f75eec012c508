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
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/metrics"
)

// Encode writes obj to w as a Variant.
func Encode(w io.Writer, cfg Config, obj binary.Object) error {
	e := NewEncoder(w, cfg)
	e.Variant(obj)
	return encoded(e.Error())
}

// EncodeStruct writes the fields of obj to w with no discriminator.
func EncodeStruct(w io.Writer, cfg Config, obj binary.Object) error {
	e := NewEncoder(w, cfg)
	e.Struct(obj)
	return encoded(e.Error())
}

func encoded(err error) error {
	if err != nil {
		metrics.Default.EncodeErrors.WithLabelValues(metrics.Kind(err)).Inc()
		return err
	}
	metrics.Default.ObjectsEncoded.Inc()
	return nil
}

// Decode reads a Variant from r.
// On failure the returned object is always nil.
func Decode(r io.Reader, cfg Config) (binary.Object, error) {
	d := NewDecoder(r, cfg)
	obj := d.Variant()
	if err := decoded(d.Error()); err != nil {
		return nil, err
	}
	return obj, nil
}

// DecodeStruct reads the fields of a new instance of class from r.
// On failure the returned object is always nil.
func DecodeStruct(r io.Reader, cfg Config, class binary.Class) (binary.Object, error) {
	d := NewDecoder(r, cfg)
	obj := class.New()
	d.Struct(obj)
	if err := decoded(d.Error()); err != nil {
		return nil, err
	}
	return obj, nil
}

func decoded(err error) error {
	if err != nil {
		metrics.Default.DecodeErrors.WithLabelValues(metrics.Kind(err)).Inc()
		return err
	}
	metrics.Default.ObjectsDecoded.Inc()
	return nil
}

// Marshal returns the encoding of obj as a Variant.
func Marshal(cfg Config, obj binary.Object) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, cfg, obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a Variant that must occupy all of data.
func Unmarshal(data []byte, cfg Config) (binary.Object, error) {
	r := bytes.NewReader(data)
	d := NewDecoder(r, cfg)
	obj := d.Variant()
	if d.Error() == nil && r.Len() != 0 {
		d.SetError(errors.Errorf("%d trailing bytes after %v", r.Len(), obj))
	}
	if err := decoded(d.Error()); err != nil {
		return nil, err
	}
	return obj, nil
}
