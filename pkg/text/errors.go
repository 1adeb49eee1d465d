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

// ❌ PatternError reports a pattern rule whose expression does not compile.
// It is returned before any rule of the set is applied.
type PatternError struct {
	Index   int    // position of the rule in its RuleSet
	Name    string // rule description
	Pattern string // the expression as written, without flags
	Err     error  // underlying regexp error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("rule %d (%s): invalid pattern %q: %v", e.Index, e.Name, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
