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

package text

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ApplyRules applies rules to document in declaration order and returns the
// patched document with a report of every rule outcome.
//
// All rules are validated, and all patterns compiled, before the first rule
// runs: a *PatternError or validation error leaves nothing half applied.
// A rule that matches nothing is reported, never returned as an error.
func ApplyRules(document string, rules RuleSet) (string, *Report, error) {
	steps, err := rules.compile()
	if err != nil {
		return "", nil, err
	}

	report := &Report{Results: make([]RuleResult, 0, len(steps))}
	current := document
	for i, apply := range steps {
		next, res := apply(current)
		res.Index = i
		report.Results = append(report.Results, res)
		current = next
	}
	report.Changed = current != document

	return current, report, nil
}

// 🎯 Result contains the content before and after patching
type Result struct {
	// OriginalContent is the content before any rule ran
	OriginalContent []byte

	// ModifiedContent is the content after all rules ran
	ModifiedContent []byte

	// WasModified indicates the content changed
	WasModified bool

	// Report holds the outcome of each rule
	Report *Report
}

// 🔌 Patcher applies rule sets to content
type Patcher interface {
	// Patch reads content fully and applies rules to it
	Patch(ctx context.Context, content io.Reader, rules RuleSet) (*Result, error)

	// Validate checks that all rules are valid
	Validate(rules RuleSet) error
}

// DefaultPatcher implements Patcher on top of ApplyRules
type DefaultPatcher struct{}

var _ Patcher = (*DefaultPatcher)(nil)

// NewPatcher creates a new DefaultPatcher
func NewPatcher() *DefaultPatcher {
	return &DefaultPatcher{}
}

// Patch implements Patcher.Patch
func (p *DefaultPatcher) Patch(ctx context.Context, content io.Reader, rules RuleSet) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}
	if !utf8.Valid(original) {
		logger.Warn().Int("bytes", len(original)).Msg("content is not valid UTF-8, patching bytes as-is")
	}

	patched, report, err := ApplyRules(string(original), rules)
	if err != nil {
		return nil, errors.Errorf("applying rules: %w", err)
	}

	for _, res := range report.Results {
		logger.Debug().
			Int("rule", res.Index).
			Str("name", res.Name).
			Str("kind", string(res.Kind)).
			Str("outcome", string(res.Outcome)).
			Int("count", res.Count).
			Msg("rule evaluated")
	}

	return &Result{
		OriginalContent: original,
		ModifiedContent: []byte(patched),
		WasModified:     report.Changed,
		Report:          report,
	}, nil
}

// Validate implements Patcher.Validate
func (p *DefaultPatcher) Validate(rules RuleSet) error {
	return rules.Validate()
}
