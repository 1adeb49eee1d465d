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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, async bool) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes a single operation
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	r.logger.Debug().Str("target", op.Target()).Msg("running operation")
	return op.Execute(ctx)
}

// 🏃 RunAll executes operations in order, stopping at the first error.
// In async mode operations on different targets run concurrently, while
// operations sharing a target still run one after another in the given order.
func (r *OperationRunner) RunAll(ctx context.Context, ops []Operation) error {
	if r.async {
		return r.runAsync(ctx, ops)
	}
	return r.runSync(ctx, ops)
}

// 🔄 runSync runs operations one at a time
func (r *OperationRunner) runSync(ctx context.Context, ops []Operation) error {
	for _, op := range ops {
		if err := r.Run(ctx, op); err != nil {
			return err
		}
	}
	return nil
}

// ⚡ runAsync runs one goroutine per target file
func (r *OperationRunner) runAsync(ctx context.Context, ops []Operation) error {
	groups := groupByTarget(ops)
	r.logger.Debug().Int("operations", len(ops)).Int("targets", len(groups)).Msg("running operations concurrently")

	g, gctx := errgroup.WithContext(ctx)
	for _, group := range groups {
		g.Go(func() error {
			for _, op := range group {
				if err := r.Run(gctx, op); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// groupByTarget splits ops by target, keeping first-seen target order and
// the relative order of operations within each target
func groupByTarget(ops []Operation) [][]Operation {
	index := make(map[string]int)
	var groups [][]Operation
	for _, op := range ops {
		i, ok := index[op.Target()]
		if !ok {
			i = len(groups)
			index[op.Target()] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], op)
	}
	return groups
}
