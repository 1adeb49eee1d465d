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

// 🔄 LiteralRule replaces non-overlapping occurrences of Old with New.
// A positive Limit caps the number of replacements, counted from the start.
type LiteralRule struct {
	Name  string
	Old   string
	New   string
	Limit int
}

func (r LiteralRule) Kind() Kind { return KindLiteral }

func (r LiteralRule) Describe() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("replace %s", abbreviate(r.Old))
}

func (r LiteralRule) compile() (step, error) {
	if r.Old == "" {
		return nil, errors.Errorf("old text is required")
	}
	if r.Limit < 0 {
		return nil, errors.Errorf("limit must not be negative, got %d", r.Limit)
	}

	return func(doc string) (string, RuleResult) {
		n := strings.Count(doc, r.Old)
		if r.Limit > 0 && n > r.Limit {
			n = r.Limit
		}
		if n == 0 {
			return doc, result(r, OutcomeNotFound, 0, "")
		}
		return strings.Replace(doc, r.Old, r.New, n), result(r, OutcomeApplied, n, "")
	}, nil
}

// abbreviate shortens s to its first line, capped at 40 runes, for display
func abbreviate(s string) string {
	const width = 40
	first, _, multi := strings.Cut(s, "\n")
	runes := []rune(first)
	if len(runes) > width {
		return string(runes[:width]) + "…"
	}
	if multi {
		return first + "…"
	}
	return first
}
