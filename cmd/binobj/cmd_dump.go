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
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/capture"
)

func newDumpCmd(g *globals) *cobra.Command {
	var (
		format  string
		dynamic bool
	)
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the objects of a capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.V{"file": args[0]}.Bind(cmd.Context())
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			objects, _, err := capture.ReadAll(ctx, f, capture.ReaderOptions{Dynamic: dynamic})
			if err != nil {
				return err
			}
			log.D(ctx, "Read %d objects", len(objects))
			return dump(cmd.OutOrStdout(), format, objects)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or cbor")
	cmd.Flags().BoolVar(&dynamic, "dynamic", false, "decode using the schemas in the capture only")
	return cmd
}

func dump(out io.Writer, format string, objects []binary.Object) error {
	switch format {
	case "text":
		for _, o := range objects {
			if o == nil {
				fmt.Fprintln(out, "<nil>")
				continue
			}
			fmt.Fprintf(out, "%s %v\n", o.Class().Schema().Key(), native(o))
		}
		return nil
	case "json":
		for _, o := range objects {
			v, err := structpb.NewValue(native(o))
			if err != nil {
				return err
			}
			b, err := protojson.Marshal(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		}
		return nil
	case "cbor":
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return err
		}
		values := make([]interface{}, len(objects))
		for i, o := range objects {
			values[i] = native(o)
		}
		b, err := em.Marshal(values)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
