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
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/store"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ PlanOptions control how patches become operations
type PlanOptions struct {
	// Names selects patches by name; empty selects all
	Names []string
	// DryRun forces every operation into dry-run mode
	DryRun bool
	// ShowDiff renders diffs for written changes too
	ShowDiff bool
	Store    store.Store
	Patcher  text.Patcher
	Logger   *log.Logger
}

// 🗺️ Plan converts the selected patches into one operation per target file.
// Glob paths expand to every matching file, in sorted order.
func Plan(cfg *config.Config, opts PlanOptions) ([]Operation, error) {
	patches, err := cfg.Select(opts.Names...)
	if err != nil {
		return nil, err
	}

	flags := cfg.Flags
	if flags == nil {
		flags = &config.Flags{}
	}

	var ops []Operation
	for _, p := range patches {
		rules, err := p.RuleSet()
		if err != nil {
			return nil, errors.Errorf("patch %q: %w", p.Name, err)
		}

		paths, err := store.Expand("", cfg.ResolvePath(p))
		if err != nil {
			return nil, errors.Errorf("patch %q: %w", p.Name, err)
		}

		for _, path := range paths {
			op, err := NewPatchOperation(Options{
				Name:     p.Name,
				Path:     path,
				Rules:    rules,
				Store:    opts.Store,
				Patcher:  opts.Patcher,
				Logger:   opts.Logger,
				DryRun:   opts.DryRun || flags.DryRun || p.DryRun,
				Backup:   flags.Backup || p.Backup,
				ShowDiff: opts.ShowDiff,
			})
			if err != nil {
				return nil, errors.Errorf("patch %q: %w", p.Name, err)
			}
			ops = append(ops, op)
		}
	}

	return ops, nil
}
