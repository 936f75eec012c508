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

// Package assert is a small fluent assertion library for tests.
//
// Assertions are built with For, which takes the failure target and a title:
//
//	assert.For(ctx, "decode %v", name).ThatError(err).Succeeded()
//
// A target is a context.Context (failures are logged at Error severity, which
// fails a log.Testing context), anything with Error/Fatal/Log methods such as
// *testing.T, or nil for stdout.
package assert

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/iburinoc/binobj/core/log"
)

// Output matches the logging methods of the test host types.
type Output interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Manager builds assertions that report to a single Output.
type Manager struct{ out Output }

// Assertion is a titled check waiting for a subject.
type Assertion struct {
	out   Output
	title string
}

// To returns a Manager reporting to t.
func To(t interface{}) Manager {
	switch t := t.(type) {
	case nil:
		return Manager{stdout{}}
	case context.Context:
		return Manager{logOutput{t}}
	case Output:
		return Manager{t}
	default:
		panic(fmt.Errorf("unsupported assertion target %T", t))
	}
}

// For starts an assertion titled with msg on t.
func For(t interface{}, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// With starts an untitled assertion on ctx.
func With(ctx context.Context) *Assertion { return To(ctx).For("") }

// For starts an assertion titled with msg.
func (m Manager) For(msg string, args ...interface{}) *Assertion {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Assertion{out: m.out, title: msg}
}

// check reports a failure unless ok holds, and returns ok.
func (a *Assertion) check(ok bool, got interface{}, op string, expect ...interface{}) bool {
	if ok {
		return true
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n    Got     %s", a.title, pretty(got))
	fmt.Fprintf(b, "\n    Expect  %s", op)
	for _, e := range expect {
		fmt.Fprintf(b, " %s", pretty(e))
	}
	a.out.Error(b.String())
	return false
}

// diff reports a failure with the cmp diff of got against expect.
func (a *Assertion) diff(got, expect interface{}, opts []cmp.Option) bool {
	d := cmp.Diff(expect, got, deep(opts)...)
	if d == "" {
		return true
	}
	a.out.Error(fmt.Sprintf("%s\n    Diff (-expect +got)\n%s", a.title, d))
	return false
}

func pretty(v interface{}) string {
	switch v := v.(type) {
	case string:
		return "`" + v + "`"
	case error:
		return "`" + v.Error() + "`"
	default:
		return fmt.Sprint(v)
	}
}

var deepDefaults = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

func deep(opts []cmp.Option) []cmp.Option {
	if len(opts) == 0 {
		return deepDefaults
	}
	return append(append([]cmp.Option{}, deepDefaults...), opts...)
}

type logOutput struct{ ctx context.Context }

func (o logOutput) Fatal(args ...interface{}) { log.F(o.ctx, true, "%s", fmt.Sprint(args...)) }
func (o logOutput) Error(args ...interface{}) { log.E(o.ctx, "%s", fmt.Sprint(args...)) }
func (o logOutput) Log(args ...interface{})   { log.I(o.ctx, "%s", fmt.Sprint(args...)) }

type stdout struct{}

func (stdout) Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
	panic("fatal assertion without a test context")
}
func (stdout) Error(args ...interface{}) { fmt.Fprintln(os.Stdout, args...) }
func (stdout) Log(args ...interface{})   { fmt.Fprintln(os.Stdout, args...) }
