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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/log"
)

func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var ro runOptions

	cmd := &cobra.Command{
		Use:   "apply [patch...]",
		Short: "Apply patches to their target files",
		Long: `Apply runs every configured patch, or only the named ones.
For each target file it will:
1. Read the whole file
2. Apply every rule in order, in memory
3. Report each rule outcome
4. Write the file back only if it changed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())

			log.FromContext(ctx).Header("applying patches")
			ro.names = args
			return runPatches(ctx, opts, ro)
		},
	}

	cmd.Flags().BoolVar(&ro.dryRun, "dry-run", false, "report changes without writing them")
	cmd.Flags().BoolVar(&ro.diff, "diff", false, "print a unified diff of every change")
	cmd.Flags().BoolVar(&ro.async, "async", false, "patch distinct files concurrently")

	return cmd
}
