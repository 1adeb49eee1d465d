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

import "fmt"

// 📊 Outcome is what happened when a rule was applied
type Outcome string

const (
	OutcomeApplied        Outcome = "applied"
	OutcomeNotFound       Outcome = "not_found"
	OutcomeGuardMismatch  Outcome = "guard_mismatch"
	OutcomeOutOfRange     Outcome = "out_of_range"
	OutcomeAlreadyApplied Outcome = "already_applied"
)

// String returns a human readable form of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNotFound:
		return "not found"
	case OutcomeGuardMismatch:
		return "guard mismatch, not applied"
	case OutcomeOutOfRange:
		return "line out of range, not applied"
	case OutcomeAlreadyApplied:
		return "already applied"
	default:
		return "unknown"
	}
}

// 📝 RuleResult records the outcome of a single rule
type RuleResult struct {
	Index   int     // position of the rule in its RuleSet
	Name    string  // rule description
	Kind    Kind    // rule type
	Outcome Outcome // what happened
	Count   int     // number of replacements or insertions made
	Detail  string  // optional explanation, e.g. the line found on a guard mismatch
}

// Matched reports whether the rule changed the document
func (r RuleResult) Matched() bool {
	return r.Outcome == OutcomeApplied
}

// 📋 Report enumerates the outcome of every rule, in declaration order
type Report struct {
	Results []RuleResult
	Changed bool // whether the patched document differs from the original
}

// Applied returns the number of rules that matched
func (r *Report) Applied() int {
	n := 0
	for _, res := range r.Results {
		if res.Matched() {
			n++
		}
	}
	return n
}

// Replacements returns the total number of replacements made by all rules
func (r *Report) Replacements() int {
	n := 0
	for _, res := range r.Results {
		n += res.Count
	}
	return n
}

// Summary returns a one-line description of the report
func (r *Report) Summary() string {
	if !r.Changed {
		return fmt.Sprintf("%d/%d rules applied, no changes", r.Applied(), len(r.Results))
	}
	return fmt.Sprintf("%d/%d rules applied, %d replacements", r.Applied(), len(r.Results), r.Replacements())
}
