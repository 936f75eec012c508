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
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Testing returns a context that logs to t.
// Error messages fail the test and Fatal messages stop it.
func Testing(t testing.TB) context.Context {
	return SubTest(context.Background(), t)
}

// SubTest returns ctx with its handler replaced by one logging to t, keeping
// any bound values. Use it inside t.Run.
func SubTest(ctx context.Context, t testing.TB) context.Context {
	return PutHandler(ctx, TestHandler(t))
}

// TestHandler returns a Handler that writes every message to t's log.
func TestHandler(t testing.TB) Handler {
	out := ZapCore(zaptest.NewLogger(t, zaptest.Level(zapcore.DebugLevel)).Core())
	return NewHandler(func(m *Message) {
		t.Helper()
		out.Handle(m)
		switch {
		case m.Severity >= Fatal:
			t.FailNow()
		case m.Severity >= Error:
			t.Fail()
		}
	}, out.Close)
}
