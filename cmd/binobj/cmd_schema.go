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
	"os"

	"github.com/spf13/cobra"

	"github.com/iburinoc/binobj/framework/binary/capture"
)

func newSchemaCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "schema FILE",
		Short: "Print the entities declared in a capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			_, entities, err := capture.ReadAll(cmd.Context(), f, capture.ReaderOptions{Dynamic: true})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entities {
				fmt.Fprintf(out, "%s %v\n", e.ID(), e)
				fmt.Fprintf(out, "  %s\n", e.Signature())
			}
			return nil
		},
	}
}
