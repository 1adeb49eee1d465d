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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 Flags holds defaults applied to every patch
type Flags struct {
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Backup bool `json:"backup,omitempty" yaml:"backup,omitempty"`
	Async  bool `json:"async,omitempty" yaml:"async,omitempty"`
}

// 🔄 RuleConfig is the serialized form of a text.Rule. Which fields apply
// depends on Kind: line (line, guard, match, replace), literal (old, new),
// pattern (search, replace, flags, literal) or insert (anchor, text, position).
type RuleConfig struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Guard    string   `json:"guard,omitempty" yaml:"guard,omitempty"`
	Match    string   `json:"match,omitempty" yaml:"match,omitempty"`
	Old      string   `json:"old,omitempty" yaml:"old,omitempty"`
	New      string   `json:"new,omitempty" yaml:"new,omitempty"`
	Search   string   `json:"search,omitempty" yaml:"search,omitempty"`
	Flags    []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Literal  bool     `json:"literal,omitempty" yaml:"literal,omitempty"`
	Anchor   string   `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	Position string   `json:"position,omitempty" yaml:"position,omitempty"`
	Replace  string   `json:"replace,omitempty" yaml:"replace,omitempty"`
	Limit    int      `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// 📦 Patch is one target file (or glob) and the ordered rules applied to it
type Patch struct {
	Name   string       `json:"name" yaml:"name"`
	Path   string       `json:"path" yaml:"path"`
	DryRun bool         `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Backup bool         `json:"backup,omitempty" yaml:"backup,omitempty"`
	Rules  []RuleConfig `json:"rules" yaml:"rules"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Patches []Patch `json:"patches" yaml:"patches"`
	Flags   *Flags  `json:"flags,omitempty" yaml:"flags,omitempty"`

	location string
}

// Location returns the path the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// ToRule converts the serialized rule into a text.Rule
func (r RuleConfig) ToRule() (text.Rule, error) {
	switch text.Kind(strings.ToLower(strings.TrimSpace(r.Kind))) {
	case text.KindLine:
		if r.Line == 0 {
			return nil, errors.Errorf("line is required")
		}
		return text.LineRule{
			Name:    r.Name,
			Line:    r.Line,
			Guard:   r.Guard,
			Match:   text.GuardMatch(strings.ToLower(r.Match)),
			Replace: r.Replace,
		}, nil
	case text.KindLiteral:
		if r.Old == "" {
			return nil, errors.Errorf("old is required")
		}
		return text.LiteralRule{
			Name:  r.Name,
			Old:   r.Old,
			New:   r.New,
			Limit: r.Limit,
		}, nil
	case text.KindPattern:
		if r.Search == "" {
			return nil, errors.Errorf("search is required")
		}
		flags := make([]text.Flag, 0, len(r.Flags))
		for _, f := range r.Flags {
			flags = append(flags, text.Flag(strings.ToLower(f)))
		}
		return text.PatternRule{
			Name:    r.Name,
			Pattern: r.Search,
			Replace: r.Replace,
			Flags:   flags,
			Literal: r.Literal,
			Limit:   r.Limit,
		}, nil
	case text.KindInsert:
		if r.Anchor == "" {
			return nil, errors.Errorf("anchor is required")
		}
		if r.Text == "" {
			return nil, errors.Errorf("text is required")
		}
		return text.InsertRule{
			Name:     r.Name,
			Anchor:   r.Anchor,
			Text:     r.Text,
			Position: text.Position(strings.ToLower(r.Position)),
			Limit:    r.Limit,
		}, nil
	case "":
		return nil, errors.Errorf("kind is required")
	default:
		return nil, errors.Errorf("unknown rule kind %q", r.Kind)
	}
}

// 🧩 RuleSet converts the patch rules into a validated text.RuleSet
func (p Patch) RuleSet() (text.RuleSet, error) {
	rules := make(text.RuleSet, 0, len(p.Rules))
	for i, rc := range p.Rules {
		rule, err := rc.ToRule()
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if len(cfg.Patches) == 0 {
		return errors.Errorf("at least one patch is required")
	}

	seen := make(map[string]bool, len(cfg.Patches))
	for i := range cfg.Patches {
		p := &cfg.Patches[i]
		if p.Path == "" {
			return errors.Errorf("patch %d: path is required", i)
		}
		p.Path = filepath.Clean(p.Path)
		if p.Name == "" {
			p.Name = p.Path
		}
		if seen[p.Name] {
			return errors.Errorf("patch %q: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if len(p.Rules) == 0 {
			return errors.Errorf("patch %q: at least one rule is required", p.Name)
		}
		if _, err := p.RuleSet(); err != nil {
			return errors.Errorf("patch %q: %w", p.Name, err)
		}
	}

	if cfg.Flags == nil {
		cfg.Flags = &Flags{}
	}

	return nil
}

// 🎯 Select returns the named patches in config order, or all patches when no names are given
func (cfg *Config) Select(names ...string) ([]Patch, error) {
	if len(names) == 0 {
		return cfg.Patches, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	selected := make([]Patch, 0, len(names))
	for _, p := range cfg.Patches {
		if want[p.Name] {
			selected = append(selected, p)
			delete(want, p.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, errors.Errorf("unknown patch %q", n)
		}
	}

	return selected, nil
}

// 📂 ResolvePath returns the patch path, joined to the config directory when relative
func (cfg *Config) ResolvePath(p Patch) string {
	if filepath.IsAbs(p.Path) || cfg.location == "" {
		return p.Path
	}
	return filepath.Join(filepath.Dir(cfg.location), p.Path)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	names := make([]string, 0, len(cfg.Patches))
	for _, p := range cfg.Patches {
		names = append(names, fmt.Sprintf("%s (%d rules)", p.Name, len(p.Rules)))
	}
	return strings.Join(names, ", ")
}
