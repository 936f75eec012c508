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
	"fmt"
	"strings"
)

// V is a map of key-value pairs that can be bound to a context with Bind.
type V map[string]interface{}

type values struct {
	v      V
	parent *values
}

// Bind returns a new context with V attached. Keys bound later shadow the
// same keys bound earlier.
func (v V) Bind(ctx context.Context) context.Context {
	return context.WithValue(ctx, valuesKey, &values{v, getValues(ctx)})
}

func getValues(ctx context.Context) *values { return get[*values](ctx, valuesKey) }

// flatten returns the bound values with inner bindings shadowing outer ones.
func (n *values) flatten() Values {
	seen := map[string]bool{}
	out := Values{}
	for ; n != nil; n = n.parent {
		for name, value := range n.v {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, &Value{Name: name, Value: value})
		}
	}
	return out
}

func (v Values) String() string {
	sb := strings.Builder{}
	sb.WriteString("(")
	for i, v := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", v.Name, v.Value)
	}
	sb.WriteString(")")
	return sb.String()
}
