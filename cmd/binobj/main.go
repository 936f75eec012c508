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

// The binobj command inspects and produces encoded objects and captures.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburinoc/binobj/core/app/config"
	"github.com/iburinoc/binobj/core/data/endian"
	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary/stream"

	// Registers the scalar box classes.
	_ "github.com/iburinoc/binobj/framework/binary/any"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals holds the state set up from the persistent flags.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string

	cfg     *config.Config
	handler log.Handler
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "binobj",
		Short:         "Encode, decode and inspect binary objects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.handler != nil {
				g.handler.Close()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "configuration file (.yaml, .yml or .toml)")
	flags.StringVar(&g.logLevel, "log-level", "", "lowest severity logged (debug, info, warn, error)")
	flags.StringVar(&g.logFormat, "log-format", "", "log format (console or json)")
	flags.StringVar(&g.logFile, "log-file", "", "write logs to a rotated file instead of stderr")

	root.AddCommand(newClassesCmd(g))
	root.AddCommand(newEncodeCmd(g))
	root.AddCommand(newDumpCmd(g))
	root.AddCommand(newSchemaCmd(g))
	root.AddCommand(newVerifyCmd(g))
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// log handler on the command's context.
func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if g.logFile != "" {
		cfg.Log.File = g.logFile
	}
	zcfg, err := cfg.Zap()
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.handler = log.Zap(zcfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.PutHandler(ctx, g.handler)
	ctx = log.PutFilter(ctx, log.SeverityFilter(zcfg.Level))
	ctx = log.PutTag(ctx, cmd.Name())
	cmd.SetContext(ctx)
	log.D(ctx, "Configured with %+v", *cfg)
	return nil
}

// stream returns the stream configuration selected by the config file.
func (g *globals) stream() (stream.Config, error) {
	out := stream.Config{}
	var err error
	if out.Codec, err = stream.ParseCodec(g.cfg.Codec.Codec); err != nil {
		return out, err
	}
	if out.ByteOrder, err = endian.ParseOrder(g.cfg.Codec.ByteOrder); err != nil {
		return out, err
	}
	if out.Discriminator, err = stream.ParseDiscriminator(g.cfg.Codec.Discriminator); err != nil {
		return out, err
	}
	return out, nil
}
