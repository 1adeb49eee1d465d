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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/store"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile   string
	debugLogging bool
)

// skipConfig marks commands that run without a configuration file
const skipConfig = "skip-config"

// loadRootOpts fills o and returns ctx carrying the console logger
func loadRootOpts(ctx context.Context, o *opts.RootOpts) (context.Context, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return ctx, errors.Errorf("loading config: %w", err)
	}

	o.Config = cfg
	o.UserLogger = log.NewUserLogger(ctx)
	o.Store = store.NewLocal()
	o.Patcher = text.NewPatcher()
	return log.NewContext(ctx, log.NewWithZerolog(os.Stdout, *zerolog.Ctx(ctx))), nil
}

func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".patchrc.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false, "enable debug logging")
}

func setupLogging(ctx context.Context) context.Context {
	// console output covers info-level events unless debugging
	level := zerolog.WarnLevel
	if debugLogging {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
