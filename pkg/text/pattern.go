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
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🚩 Flag is a matching mode for a PatternRule
type Flag string

const (
	FlagDotAll     Flag = "dotall"      // . matches \n
	FlagMultiline  Flag = "multiline"   // ^ and $ match at line boundaries
	FlagIgnoreCase Flag = "ignore_case" // case-insensitive matching
	FlagUngreedy   Flag = "ungreedy"    // swap the meaning of x* and x*?
)

var flagLetters = map[Flag]string{
	FlagDotAll:     "s",
	FlagMultiline:  "m",
	FlagIgnoreCase: "i",
	FlagUngreedy:   "U",
}

// 🔍 PatternRule replaces every match of a regular expression (RE2 syntax).
//
// Replace is expanded like regexp.Regexp.Expand ($1, ${name}) unless Literal
// is set, in which case it is inserted verbatim. A positive Limit caps the
// number of matches replaced.
type PatternRule struct {
	Name    string
	Pattern string
	Replace string
	Flags   []Flag
	Literal bool
	Limit   int
}

func (r PatternRule) Kind() Kind { return KindPattern }

func (r PatternRule) Describe() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("pattern %s", abbreviate(r.Pattern))
}

// expression returns the pattern prefixed with its inline flag group
func (r PatternRule) expression() (string, error) {
	var letters strings.Builder
	for _, f := range r.Flags {
		l, ok := flagLetters[Flag(strings.ToLower(string(f)))]
		if !ok {
			return "", errors.Errorf("unknown pattern flag %q", f)
		}
		if !strings.Contains(letters.String(), l) {
			letters.WriteString(l)
		}
	}
	if letters.Len() == 0 {
		return r.Pattern, nil
	}
	return "(?" + letters.String() + ")" + r.Pattern, nil
}

func (r PatternRule) compile() (step, error) {
	if r.Pattern == "" {
		return nil, errors.Errorf("pattern is required")
	}
	if r.Limit < 0 {
		return nil, errors.Errorf("limit must not be negative, got %d", r.Limit)
	}
	expr, err := r.expression()
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{
			Name:    r.Describe(),
			Pattern: r.Pattern,
			Err:     err,
		}
	}

	return func(doc string) (string, RuleResult) {
		n := -1
		if r.Limit > 0 {
			n = r.Limit
		}
		matches := re.FindAllStringSubmatchIndex(doc, n)
		if len(matches) == 0 {
			return doc, result(r, OutcomeNotFound, 0, "")
		}

		out := make([]byte, 0, len(doc))
		last := 0
		for _, m := range matches {
			out = append(out, doc[last:m[0]]...)
			if r.Literal {
				out = append(out, r.Replace...)
			} else {
				out = re.ExpandString(out, r.Replace, doc, m)
			}
			last = m[1]
		}
		out = append(out, doc[last:]...)
		return string(out), result(r, OutcomeApplied, len(matches), "")
	}, nil
}
