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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🛡️ GuardMatch controls how a LineRule compares its guard to the current line
type GuardMatch string

const (
	MatchExact    GuardMatch = "exact"    // line must equal the guard
	MatchContains GuardMatch = "contains" // line must contain the guard
)

// 📍 LineRule replaces the content of a single line when its guard still holds.
// Line is 1-based. The replacement keeps the line's original terminator.
type LineRule struct {
	Name    string
	Line    int
	Guard   string
	Match   GuardMatch // defaults to MatchExact
	Replace string
}

func (r LineRule) Kind() Kind { return KindLine }

func (r LineRule) Describe() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("line %d", r.Line)
}

func (r LineRule) compile() (step, error) {
	if r.Line < 1 {
		return nil, errors.Errorf("line must be at least 1, got %d", r.Line)
	}
	switch r.Match {
	case "", MatchExact:
	case MatchContains:
		if r.Guard == "" {
			return nil, errors.Errorf("guard is required for %q match", MatchContains)
		}
	default:
		return nil, errors.Errorf("unknown guard match %q", r.Match)
	}

	return func(doc string) (string, RuleResult) {
		lines := splitLines(doc)
		if r.Line > len(lines) {
			return doc, result(r, OutcomeOutOfRange, 0, fmt.Sprintf("document has %d lines", len(lines)))
		}

		idx := r.Line - 1
		body, eol := cutEOL(lines[idx])
		if body == r.Replace {
			return doc, result(r, OutcomeAlreadyApplied, 0, "")
		}
		if !r.guardHolds(body) {
			return doc, result(r, OutcomeGuardMismatch, 0, fmt.Sprintf("line %d is %q", r.Line, body))
		}

		lines[idx] = r.Replace + eol
		return strings.Join(lines, ""), result(r, OutcomeApplied, 1, "")
	}, nil
}

func (r LineRule) guardHolds(line string) bool {
	if r.Match == MatchContains {
		return strings.Contains(line, r.Guard)
	}
	return line == r.Guard
}

// splitLines splits doc into lines that keep their terminators, so joining
// them reproduces doc byte for byte.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.SplitAfter(doc, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func cutEOL(line string) (string, string) {
	if body, ok := strings.CutSuffix(line, "\r\n"); ok {
		return body, "\r\n"
	}
	if body, ok := strings.CutSuffix(line, "\n"); ok {
		return body, "\n"
	}
	return line, ""
}
