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
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/capture"
	"github.com/iburinoc/binobj/framework/binary/registry"
	"github.com/iburinoc/binobj/framework/binary/schema"
	"github.com/iburinoc/binobj/framework/binary/stream"
)

func newEncodeCmd(g *globals) *cobra.Command {
	var (
		typ       string
		values    []string
		output    string
		asCapture bool
		variant   bool
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Box scalar values and encode them",
		Long: `Encode boxes each --value with the class named by --type and writes it.
Without --capture each object is written as its fields only, or with its
type discriminator if --variant is set, and printed as hex unless -o is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.V{"type": typ}.Bind(cmd.Context())
			cfg, err := g.stream()
			if err != nil {
				return err
			}
			key := typ
			if !strings.Contains(key, ".") {
				key = "any." + key
			}
			class, err := registry.Global.Lookup(key)
			if err != nil {
				return err
			}
			objs := make([]binary.Object, len(values))
			for i, v := range values {
				if objs[i], err = parseBox(class, v); err != nil {
					return err
				}
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if asCapture {
				cw, err := capture.NewWriter(ctx, w, capture.Options{Config: cfg, Compress: g.cfg.Codec.Compress})
				if err != nil {
					return err
				}
				for _, o := range objs {
					if err := cw.Write(o); err != nil {
						return err
					}
				}
				log.I(ctx, "Wrote %d objects to capture", len(objs))
				return cw.Close()
			}

			for _, o := range objs {
				buf := &bytes.Buffer{}
				if variant {
					err = stream.Encode(buf, cfg, o)
				} else {
					err = stream.EncodeStruct(buf, cfg, o)
				}
				if err != nil {
					return err
				}
				if output == "" {
					fmt.Fprintln(w, hex.EncodeToString(buf.Bytes()))
				} else if _, err := w.Write(buf.Bytes()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "class of the box, such as int8_ or any.string_")
	cmd.Flags().StringArrayVarP(&values, "value", "v", nil, "value to box, may be repeated")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&asCapture, "capture", false, "write a capture file")
	cmd.Flags().BoolVar(&variant, "variant", false, "prefix each object with its type discriminator")
	cmd.MarkFlagRequired("type")
	return cmd
}

// parseBox returns an instance of the scalar box class holding s.
func parseBox(class binary.Class, s string) (binary.Object, error) {
	e := class.Schema()
	if len(e.Fields) != 1 {
		return nil, errors.Errorf("%s is not a box", e.Key())
	}
	p, ok := e.Fields[0].Type.(*schema.Primitive)
	if !ok {
		return nil, errors.Errorf("%s does not box a scalar", e.Key())
	}
	v, err := parseScalar(p.Method, s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q as %v", s, p)
	}
	obj, err := binary.Box(v)
	if err != nil {
		return nil, err
	}
	if obj.Class() != class {
		return nil, errors.Errorf("%v boxes as %s, not %s", v, obj.Class().Schema().Key(), e.Key())
	}
	return obj, nil
}

func parseScalar(m schema.Method, s string) (interface{}, error) {
	switch m {
	case schema.Bool:
		return strconv.ParseBool(s)
	case schema.Int8:
		v, err := strconv.ParseInt(s, 0, 8)
		return int8(v), err
	case schema.Uint8:
		v, err := strconv.ParseUint(s, 0, 8)
		return uint8(v), err
	case schema.Int16:
		v, err := strconv.ParseInt(s, 0, 16)
		return int16(v), err
	case schema.Uint16:
		v, err := strconv.ParseUint(s, 0, 16)
		return uint16(v), err
	case schema.Int32:
		v, err := strconv.ParseInt(s, 0, 32)
		return int32(v), err
	case schema.Uint32:
		v, err := strconv.ParseUint(s, 0, 32)
		return uint32(v), err
	case schema.Int64:
		return strconv.ParseInt(s, 0, 64)
	case schema.Uint64:
		return strconv.ParseUint(s, 0, 64)
	case schema.Float32:
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	case schema.Float64:
		return strconv.ParseFloat(s, 64)
	case schema.String:
		return s, nil
	case schema.Bytes:
		return hex.DecodeString(s)
	case schema.ID:
		return id.Parse(s)
	default:
		return nil, errors.Errorf("cannot parse %v", m)
	}
}
