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

package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/log"
)

// collect returns a handler that appends every message to the returned slice.
func collect() (log.Handler, *[]*log.Message) {
	got := &[]*log.Message{}
	return log.NewHandler(func(m *log.Message) { *got = append(*got, m) }, nil), got
}

func TestMessage(t *testing.T) {
	ctx := log.Testing(t)
	at := time.Date(2000, 1, 22, 12, 34, 56, 789e6, time.UTC)
	h, got := collect()
	c := log.PutHandler(context.Background(), h)
	c = log.PutClock(c, log.FixedClock(at))
	c = log.PutTag(c, "codec")
	c = log.Enter(c, "decode")
	c = log.V{"type": "any.int8_"}.Bind(c)
	log.E(c, "tagged %d", 7)

	assert.For(ctx, "count").ThatSlice(*got).IsLength(1)
	m := (*got)[0]
	assert.For(ctx, "text").ThatString(m.Text).Equals("tagged 7")
	assert.For(ctx, "time").That(m.Time).Equals(at)
	assert.For(ctx, "severity").That(m.Severity).Equals(log.Error)
	assert.For(ctx, "tag").ThatString(m.Tag).Equals("codec")
	assert.For(ctx, "trace").ThatSlice(m.Trace).Equals([]string{"decode"})
	assert.For(ctx, "values").ThatString(m.Values).Equals("(type: any.int8_)")
}

func TestFilter(t *testing.T) {
	ctx := log.Testing(t)
	h, got := collect()
	c := log.PutHandler(context.Background(), h)
	c = log.PutFilter(c, log.SeverityFilter(log.Warning))
	log.I(c, "hidden")
	log.W(c, "shown")
	assert.For(ctx, "filtered").ThatSlice(*got).IsLength(1)
	assert.For(ctx, "shown").ThatString((*got)[0].Text).Equals("shown")
}

func TestNoHandler(t *testing.T) {
	ctx := log.Testing(t)
	l := log.From(context.Background())
	assert.For(ctx, "active").ThatBoolean(l.Active(log.Fatal)).IsFalse()
	l.E("dropped")
}

func TestEnterAndBind(t *testing.T) {
	ctx := log.Testing(t)
	c := log.Enter(context.Background(), "outer")
	c = log.Enter(c, "inner")
	assert.For(ctx, "trace").ThatSlice(log.GetTrace(c)).Equals([]string{"inner", "outer"})

	c = log.V{"a": 1, "b": 2}.Bind(c)
	c = log.V{"a": 3}.Bind(c)
	m := log.From(c).Message(log.Info, false, "msg")
	assert.For(ctx, "values").ThatInteger(len(m.Values)).Equals(2)
	assert.For(ctx, "shadowed").That(m.Values[0].Value).Equals(3)
	assert.For(ctx, "kept").That(m.Values[1].Value).Equals(2)
}

func TestBroadcast(t *testing.T) {
	ctx := log.Testing(t)
	h1, got1 := collect()
	h2, got2 := collect()
	h := log.Broadcast(h1, nil, h2)
	log.I(log.PutHandler(context.Background(), h), "both")
	assert.For(ctx, "first").ThatSlice(*got1).IsLength(1)
	assert.For(ctx, "second").ThatSlice(*got2).IsLength(1)
	assert.For(ctx, "empty").That(log.Broadcast(nil)).IsNil()
}

func TestParseSeverity(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		in     string
		expect log.Severity
	}{
		{"debug", log.Debug},
		{"INFO", log.Info},
		{"warn", log.Warning},
		{"Warning", log.Warning},
		{"error", log.Error},
		{"fatal", log.Fatal},
	} {
		got, err := log.ParseSeverity(test.in)
		assert.For(ctx, "err %q", test.in).ThatError(err).Succeeded()
		assert.For(ctx, "severity %q", test.in).That(got).Equals(test.expect)
	}
	_, err := log.ParseSeverity("loud")
	assert.For(ctx, "unknown").ThatError(err).Failed()
}
