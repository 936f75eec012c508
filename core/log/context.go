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

package log

import (
	"context"
	"time"
)

type key int

const (
	handlerKey key = iota
	filterKey
	clockKey
	tagKey
	traceKey
	valuesKey
)

func get[T any](ctx context.Context, k key) T {
	out, _ := ctx.Value(k).(T)
	return out
}

// PutHandler returns a new context with h as the logging target.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler assigned to ctx.
func GetHandler(ctx context.Context) Handler { return get[Handler](ctx, handlerKey) }

// Filter decides which messages reach the handler.
type Filter interface {
	ShowSeverity(s Severity) bool
}

// SeverityFilter shows messages at or above its severity.
type SeverityFilter Severity

func (f SeverityFilter) ShowSeverity(s Severity) bool { return Severity(f) <= s }

// PutFilter returns a new context with the Filter f.
func PutFilter(ctx context.Context, f Filter) context.Context {
	return context.WithValue(ctx, filterKey, f)
}

// GetFilter returns the Filter assigned to ctx.
func GetFilter(ctx context.Context) Filter { return get[Filter](ctx, filterKey) }

// Clock tells the time stamped on messages.
type Clock interface {
	Time() time.Time
}

// FixedClock is a Clock stuck at one instant.
type FixedClock time.Time

func (c FixedClock) Time() time.Time { return time.Time(c) }

// PutClock returns a new context with the Clock c.
func PutClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, clockKey, c)
}

// GetClock returns the Clock assigned to ctx, or nil for the wall clock.
func GetClock(ctx context.Context) Clock { return get[Clock](ctx, clockKey) }

// PutTag returns a new context with the message tag set to tag.
func PutTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, tagKey, tag)
}

// GetTag returns the tag assigned to ctx.
func GetTag(ctx context.Context) string { return get[string](ctx, tagKey) }

type trace struct {
	name   string
	parent *trace
}

// Enter returns a new context with name pushed on the trace stack.
func Enter(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, traceKey, &trace{name, get[*trace](ctx, traceKey)})
}

// GetTrace returns the trace stack, innermost first.
func GetTrace(ctx context.Context) []string {
	var out []string
	for t := get[*trace](ctx, traceKey); t != nil; t = t.parent {
		out = append(out, t.name)
	}
	return out
}
