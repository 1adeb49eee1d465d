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

// 📌 Position is where an InsertRule places its text relative to the anchor
type Position string

const (
	PositionAfter  Position = "after"
	PositionBefore Position = "before"
)

// ➕ InsertRule inserts Text next to each occurrence of the literal Anchor.
// Occurrences that already carry Text at that spot are left alone, so
// applying the rule twice inserts nothing the second time.
type InsertRule struct {
	Name     string
	Anchor   string
	Text     string
	Position Position // defaults to PositionAfter
	Limit    int
}

func (r InsertRule) Kind() Kind { return KindInsert }

func (r InsertRule) Describe() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("insert %s %s", r.position(), abbreviate(r.Anchor))
}

func (r InsertRule) position() Position {
	if r.Position == "" {
		return PositionAfter
	}
	return r.Position
}

func (r InsertRule) compile() (step, error) {
	if r.Anchor == "" {
		return nil, errors.Errorf("anchor is required")
	}
	if r.Text == "" {
		return nil, errors.Errorf("text is required")
	}
	if r.Limit < 0 {
		return nil, errors.Errorf("limit must not be negative, got %d", r.Limit)
	}
	pos := r.position()
	if pos != PositionAfter && pos != PositionBefore {
		return nil, errors.Errorf("unknown position %q", r.Position)
	}

	return func(doc string) (string, RuleResult) {
		var out strings.Builder
		found, inserted, last := 0, 0, 0

		for offset := 0; ; {
			i := strings.Index(doc[offset:], r.Anchor)
			if i < 0 || (r.Limit > 0 && found == r.Limit) {
				break
			}
			start := offset + i
			end := start + len(r.Anchor)
			found++
			offset = end

			switch pos {
			case PositionAfter:
				if strings.HasPrefix(doc[end:], r.Text) {
					continue
				}
				out.WriteString(doc[last:end])
				out.WriteString(r.Text)
				last = end
			case PositionBefore:
				if strings.HasSuffix(doc[:start], r.Text) {
					continue
				}
				out.WriteString(doc[last:start])
				out.WriteString(r.Text)
				last = start
			}
			inserted++
		}

		switch {
		case found == 0:
			return doc, result(r, OutcomeNotFound, 0, "")
		case inserted == 0:
			return doc, result(r, OutcomeAlreadyApplied, 0, fmt.Sprintf("%d anchor(s) already carry the text", found))
		}
		out.WriteString(doc[last:])
		return out.String(), result(r, OutcomeApplied, inserted, "")
	}, nil
}
