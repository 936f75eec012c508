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
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary/capture"
)

type verified struct {
	objects  int
	entities int
	err      error
}

func newVerifyCmd(g *globals) *cobra.Command {
	var (
		metricsOut string
		jobs       int
	)
	cmd := &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that captures decode completely",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if jobs < 1 {
				return errors.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			results := make([]verified, len(args))
			grp, _ := errgroup.WithContext(ctx)
			grp.SetLimit(jobs)
			for i, path := range args {
				i, path := i, path
				grp.Go(func() error {
					results[i] = verifyFile(log.V{"file": path}.Bind(ctx), path)
					return nil
				})
			}
			grp.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for i, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", args[i], r.err)
					continue
				}
				fmt.Fprintf(out, "ok   %s: %d objects, %d entities\n", args[i], r.objects, r.entities)
			}

			if metricsOut == "" {
				metricsOut = g.cfg.Metrics.Out
			}
			if metricsOut != "" {
				if err := prometheus.WriteToTextfile(metricsOut, prometheus.DefaultGatherer); err != nil {
					return log.Err(ctx, err, "Writing metrics")
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d captures failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "write metrics in text exposition format to this file")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of captures to verify at once")
	return cmd
}

func verifyFile(ctx context.Context, path string) verified {
	f, err := os.Open(path)
	if err != nil {
		return verified{err: err}
	}
	defer f.Close()
	objects, entities, err := capture.ReadAll(ctx, f, capture.ReaderOptions{})
	if err != nil {
		log.W(ctx, "Verification failed: %v", err)
		return verified{err: err}
	}
	return verified{objects: len(objects), entities: len(entities)}
}
