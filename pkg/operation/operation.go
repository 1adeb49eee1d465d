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

	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/store"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work against a single target file
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
	// Target returns the file the operation writes to
	Target() string
}

// 🔧 Options contains configuration for a patch operation
type Options struct {
	// Name is the patch name shown in reports
	Name string
	// Path is the target file
	Path string
	// Rules is the ordered rule set applied to the file
	Rules text.RuleSet
	// Store reads and writes the target file
	Store store.Store
	// Patcher applies the rules
	Patcher text.Patcher
	// Logger prints rule outcomes to the console
	Logger *log.Logger
	// DryRun reports changes without writing them
	DryRun bool
	// Backup copies the file to <path>.bak before overwriting it
	Backup bool
	// ShowDiff renders a unified diff of every change, not only in dry runs
	ShowDiff bool
}

// validate checks the options required by every operation
func (o Options) validate() error {
	if o.Path == "" {
		return errors.Errorf("path is required")
	}
	if o.Store == nil {
		return errors.Errorf("store is required")
	}
	if o.Patcher == nil {
		return errors.Errorf("patcher is required")
	}
	if o.Logger == nil {
		return errors.Errorf("logger is required")
	}
	if len(o.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	return nil
}

// 📦 BaseOperation holds the options shared by operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Name == "" {
		opts.Name = opts.Path
	}
	return BaseOperation{Options: opts}
}

// Target implements Operation.Target
func (b BaseOperation) Target() string {
	return b.Path
}
