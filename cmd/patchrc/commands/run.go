// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// runOptions are the per-command switches shared by apply and check
type runOptions struct {
	names  []string
	dryRun bool
	diff   bool
	async  bool
}

// runPatches plans and runs the selected patches, then prints the summary line
func runPatches(ctx context.Context, o *opts.RootOpts, ro runOptions) error {
	console := log.FromContext(ctx)

	ops, err := operation.Plan(o.Config, operation.PlanOptions{
		Names:    ro.names,
		DryRun:   ro.dryRun,
		ShowDiff: ro.diff,
		Store:    o.Store,
		Patcher:  o.Patcher,
		Logger:   console,
	})
	if err != nil {
		return errors.Errorf("planning patches: %w", err)
	}
	console.Infof("%d target file(s) selected", len(ops))

	async := ro.async || (o.Config.Flags != nil && o.Config.Flags.Async)
	runner := operation.NewRunner(zerolog.Ctx(ctx), async)

	err = runner.RunAll(ctx, ops)
	if ro.dryRun && !ro.diff {
		console.Warningf("dry run: %d file(s) left untouched", len(ops))
	}
	console.Summary()
	if err != nil {
		return errors.Errorf("running patches: %w", err)
	}

	return nil
}
