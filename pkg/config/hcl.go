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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// hclRule keeps every rule kind in one labelled block type, so gohcl
// preserves declaration order across kinds
type hclRule struct {
	Kind     string   `hcl:"kind,label"`
	Name     string   `hcl:"name,optional"`
	Line     int      `hcl:"line,optional"`
	Guard    string   `hcl:"guard,optional"`
	Match    string   `hcl:"match,optional"`
	Old      string   `hcl:"old,optional"`
	New      string   `hcl:"new,optional"`
	Search   string   `hcl:"search,optional"`
	Flags    []string `hcl:"flags,optional"`
	Literal  bool     `hcl:"literal,optional"`
	Anchor   string   `hcl:"anchor,optional"`
	Text     string   `hcl:"text,optional"`
	Position string   `hcl:"position,optional"`
	Replace  string   `hcl:"replace,optional"`
	Limit    int      `hcl:"limit,optional"`
}

type hclPatch struct {
	Name   string    `hcl:"name,label"`
	Path   string    `hcl:"path"`
	DryRun bool      `hcl:"dry_run,optional"`
	Backup bool      `hcl:"backup,optional"`
	Rules  []hclRule `hcl:"rule,block"`
}

type hclFlags struct {
	DryRun bool `hcl:"dry_run,optional"`
	Backup bool `hcl:"backup,optional"`
	Async  bool `hcl:"async,optional"`
}

type hclConfig struct {
	Patches []hclPatch `hcl:"patch,block"`
	Flags   *hclFlags  `hcl:"flags,block"`
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "patchrc.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{}
	if hclCfg.Flags != nil {
		cfg.Flags = &Flags{
			DryRun: hclCfg.Flags.DryRun,
			Backup: hclCfg.Flags.Backup,
			Async:  hclCfg.Flags.Async,
		}
	}
	for _, hp := range hclCfg.Patches {
		patch := Patch{
			Name:   hp.Name,
			Path:   hp.Path,
			DryRun: hp.DryRun,
			Backup: hp.Backup,
		}
		for _, r := range hp.Rules {
			patch.Rules = append(patch.Rules, RuleConfig(r))
		}
		cfg.Patches = append(cfg.Patches, patch)
	}

	return cfg, nil
}
