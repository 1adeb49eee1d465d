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
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Kind identifies the type of a rule
type Kind string

const (
	KindLine    Kind = "line"    // exact line-offset replacement guarded by the current content
	KindLiteral Kind = "literal" // global literal substring replacement
	KindPattern Kind = "pattern" // regular expression replacement
	KindInsert  Kind = "insert"  // insert text next to a literal anchor
)

// 🔧 Rule is a single find/replace instruction applied to a document
type Rule interface {
	// Kind returns the rule type
	Kind() Kind

	// Describe returns the rule name, or a short generated description when unnamed
	Describe() string

	// compile validates the rule and returns the function that applies it
	compile() (step, error)
}

// step applies one compiled rule to a document. It never fails: a rule that
// cannot apply reports why through the returned result.
type step func(doc string) (string, RuleResult)

// 📚 RuleSet is an ordered list of rules; later rules see the output of earlier ones
type RuleSet []Rule

// 🔍 Validate checks every rule and compiles every pattern without applying anything
func (rs RuleSet) Validate() error {
	_, err := rs.compile()
	return err
}

func (rs RuleSet) compile() ([]step, error) {
	steps := make([]step, 0, len(rs))
	for i, rule := range rs {
		if rule == nil {
			return nil, errors.Errorf("rule %d: rule is nil", i)
		}
		s, err := rule.compile()
		if err != nil {
			var perr *PatternError
			if errors.As(err, &perr) {
				perr.Index = i
				return nil, errors.WithStack(perr)
			}
			return nil, errors.Errorf("rule %d (%s): %w", i, rule.Describe(), err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func result(rule Rule, outcome Outcome, count int, detail string) RuleResult {
	return RuleResult{
		Name:    rule.Describe(),
		Kind:    rule.Kind(),
		Outcome: outcome,
		Count:   count,
		Detail:  detail,
	}
}
