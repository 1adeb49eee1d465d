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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
)

func NewValidateCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the configuration loads and every pattern compiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load already validated and compiled every rule
			total := 0
			for _, p := range opts.Config.Patches {
				opts.UserLogger.LogPatchCount(p.Name, p.Path, len(p.Rules))
				total += len(p.Rules)
			}

			opts.UserLogger.LogValidation(true, fmt.Sprintf("%s is valid: %d patches, %d rules",
				opts.Config.Location(), len(opts.Config.Patches), total), nil)
			return nil
		},
	}

	return cmd
}
