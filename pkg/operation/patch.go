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
	"bytes"
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/diff"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is the result of one patch operation
type Outcome struct {
	Path    string
	Report  *text.Report
	Written bool
	Diff    string
}

// 🩹 PatchOperation applies a rule set to one file and persists the result
type PatchOperation struct {
	BaseOperation

	mu      sync.Mutex
	outcome *Outcome
}

var _ Operation = (*PatchOperation)(nil)

// 🏭 NewPatchOperation creates a new patch operation
func NewPatchOperation(opts Options) (*PatchOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid patch operation: %w", err)
	}
	return &PatchOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// Outcome returns the result of the last Execute, or nil if it has not completed
func (op *PatchOperation) Outcome() *Outcome {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.outcome
}

// 🏃 Execute reads the file, applies every rule in memory and writes the
// document back only when it changed and the operation is not a dry run.
func (op *PatchOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("patch", op.Name).Str("path", op.Path).Logger()

	out, err := op.execute(logger.WithContext(ctx))

	entry := log.PatchEntry{
		Patch:  op.Name,
		Path:   op.Path,
		DryRun: op.DryRun,
		Err:    err,
	}
	if out != nil {
		entry.Report = out.Report
		entry.Written = out.Written
		entry.Diff = out.Diff
	}
	op.Logger.LogPatch(ctx, entry)

	if err != nil {
		return errors.Errorf("patch %q on %s: %w", op.Name, op.Path, err)
	}

	op.mu.Lock()
	op.outcome = out
	op.mu.Unlock()

	return nil
}

func (op *PatchOperation) execute(ctx context.Context) (*Outcome, error) {
	logger := zerolog.Ctx(ctx)

	original, err := op.Store.Read(ctx, op.Path)
	if err != nil {
		return nil, err
	}

	res, err := op.Patcher.Patch(ctx, bytes.NewReader(original), op.Rules)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Path: op.Path, Report: res.Report}

	if !res.WasModified {
		logger.Debug().Msg("document unchanged, skipping write")
		return out, nil
	}

	if op.DryRun || op.ShowDiff {
		out.Diff, err = diff.Unified(op.Path, string(res.OriginalContent), string(res.ModifiedContent))
		if err != nil {
			return out, err
		}
	}

	if op.DryRun {
		logger.Debug().Msg("dry run, skipping write")
		return out, nil
	}

	if op.Backup {
		if err := op.Store.Backup(ctx, op.Path); err != nil {
			return out, err
		}
	}

	if err := op.Store.WriteAtomic(ctx, op.Path, res.ModifiedContent); err != nil {
		return out, err
	}
	out.Written = true

	return out, nil
}
