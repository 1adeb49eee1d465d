package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Load loads the configuration from a file.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .patchrc (or no extension) will try both YAML and HCL formats
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(ctx, path, data)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving config path: %w", err)
	}
	cfg.location = abs

	if logger.Debug().Enabled() {
		logger.Debug().Str("config", spew.Sdump(cfg.Patches)).Msg("configuration loaded")
	}

	return cfg, nil
}

// 📝 Parse parses and validates config data; filename selects the format
func Parse(ctx context.Context, filename string, data []byte) (*Config, error) {
	var cfg *Config
	var err error

	if p := GetParser(filename); p != nil {
		cfg, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	} else {
		ext := filepath.Ext(filename)
		if ext != "" && ext != ".patchrc" && filepath.Base(filename) != ".patchrc" {
			return nil, errors.Errorf("no parser found for file: %s", filename)
		}

		// Try YAML first
		cfg, err = (&YAMLParser{}).Parse(ctx, data)
		if err != nil {
			var hclErr error
			cfg, hclErr = (&HCLParser{}).Parse(ctx, data)
			if hclErr != nil {
				return nil, errors.Errorf("failed to parse %s as YAML or HCL: %w", filename, hclErr)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
