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

// Package metrics holds the Prometheus collectors for class registration and
// object encoding and decoding.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iburinoc/binobj/core/data/pod"
	"github.com/iburinoc/binobj/framework/binary"
)

// Collector holds all Prometheus metrics for the object runtime.
type Collector struct {
	// Registry metrics
	ClassesRegistered prometheus.Counter
	DuplicateClasses  prometheus.Counter
	UnknownTypes      prometheus.Counter

	// Codec metrics
	ObjectsEncoded prometheus.Counter
	ObjectsDecoded prometheus.Counter
	EncodeErrors   *prometheus.CounterVec
	DecodeErrors   *prometheus.CounterVec

	// Capture metrics
	CaptureRecords *prometheus.CounterVec
	CaptureBytes   *prometheus.CounterVec
}

// New creates a new metrics collector with all metrics registered to reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		ClassesRegistered: f.NewCounter(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "classes_registered_total",
			Help:      "Total number of classes added to a namespace",
		}),
		DuplicateClasses: f.NewCounter(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "duplicate_classes_total",
			Help:      "Total number of classes rejected for a key already in use",
		}),
		UnknownTypes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "unknown_types_total",
			Help:      "Total number of lookups for a type with no registered class",
		}),

		ObjectsEncoded: f.NewCounter(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "objects_encoded_total",
			Help:      "Total number of top level objects encoded",
		}),
		ObjectsDecoded: f.NewCounter(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "objects_decoded_total",
			Help:      "Total number of top level objects decoded",
		}),
		EncodeErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "encode_errors_total",
			Help:      "Total number of failed encodes by error kind",
		}, []string{"kind"}),
		DecodeErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "decode_errors_total",
			Help:      "Total number of failed decodes by error kind",
		}, []string{"kind"}),

		CaptureRecords: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "capture_records_total",
			Help:      "Total number of capture records by direction and record type",
		}, []string{"direction", "record"}),
		CaptureBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binobj",
			Name:      "capture_bytes_total",
			Help:      "Total number of uncompressed capture bytes by direction",
		}, []string{"direction"}),
	}
}

// Default is the collector registered with the default Prometheus registry.
var Default = New(prometheus.DefaultRegisterer)

// Error kinds used as the "kind" label.
const (
	KindTruncated    = "truncated"
	KindUnknownType  = "unknown_type"
	KindDuplicate    = "duplicate_class"
	KindTypeMismatch = "type_mismatch"
	KindOther        = "other"
)

// Kind classifies err for the "kind" label.
func Kind(err error) string {
	switch errors.Cause(err).(type) {
	case binary.ErrUnknownType:
		return KindUnknownType
	case binary.ErrDuplicateClass:
		return KindDuplicate
	case binary.ErrTypeMismatch:
		return KindTypeMismatch
	}
	if errors.Cause(err) == pod.ErrTruncated {
		return KindTruncated
	}
	return KindOther
}
