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

package store

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Expand resolves pattern against base into a sorted list of file paths.
// A pattern without glob metacharacters is returned as-is, whether or not the
// file exists, so that a missing target surfaces as a read error later.
func Expand(base, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) && base != "" {
		pattern = filepath.Join(base, pattern)
	}
	pattern = filepath.Clean(pattern)

	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Errorf("expanding %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, &IOError{Op: "stat", Path: m, Err: err}
		}
		if info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, errors.Errorf("pattern %q matched no files", pattern)
	}

	return files, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
