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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/registry"
)

func newClassesCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the registered classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			registry.Global.Visit(func(c binary.Class) {
				e := c.Schema()
				fmt.Fprintf(out, "%s\t%s\tpod=%v\n", e.Key(), e.Signature(), e.IsPOD())
			})
			return nil
		},
	}
}
