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

package log

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/pkg/text"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_patch",
			op: func(t *testing.T, logger *Logger) {
				logger.LogPatch(context.Background(), PatchEntry{
					Patch: "fix-ja",
					Path:  "public/static/i18n.js",
					Report: &text.Report{
						Changed: true,
						Results: []text.RuleResult{
							{Index: 0, Name: "japanese", Kind: text.KindLine, Outcome: text.OutcomeApplied, Count: 1},
							{Index: 1, Name: "spanish", Kind: text.KindLine, Outcome: text.OutcomeGuardMismatch, Detail: "line 2065 is \"x\""},
						},
					},
					Written: true,
				})
			},
			wantLogs: []string{
				"[patching public/static/i18n.js]",
				"◆ fix-ja • 1/2 rules applied, 1 replacements",
				"✓ japanese                            line       applied                        ×1",
				"✗ spanish                             line       guard mismatch, not applied",
				"line 2065 is \"x\"",
				"written",
			},
		},
		{
			name: "log_failed_patch",
			op: func(t *testing.T, logger *Logger) {
				logger.LogPatch(context.Background(), PatchEntry{
					Patch: "app",
					Path:  "app.js",
					Err:   errors.New("read app.js: no such file"),
				})
			},
			wantLogs: []string{
				"[patching app.js]",
				"◆ app",
				"failed",
				"read app.js: no such file",
			},
		},
		{
			name: "log_summary",
			op: func(t *testing.T, logger *Logger) {
				logger.LogPatch(context.Background(), PatchEntry{Patch: "a", Path: "a.js", Report: &text.Report{Changed: true}, Written: true})
				logger.LogPatch(context.Background(), PatchEntry{Patch: "b", Path: "b.js", Report: &text.Report{}})
				logger.Summary()
			},
			wantLogs: []string{
				"[patching a.js]",
				"◆ a • 0/0 rules applied, 0 replacements",
				"written",
				"[patching b.js]",
				"◆ b • 0/0 rules applied, no changes",
				"unchanged",
				"",
				"summary 1 file changed",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying patches")
			},
			wantLogs: []string{
				"patchrc • applying patches",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := NewWithZerolog(buf, zerolog.New(zerolog.TestWriter{T: t}))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.InfoLevel)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestRuleResultFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		res  text.RuleResult
		want string
	}{
		{
			name: "applied",
			res:  text.RuleResult{Name: "remove group type", Kind: text.KindPattern, Outcome: text.OutcomeApplied, Count: 2},
			want: "    ✓ remove group type                   pattern    applied                        ×2",
		},
		{
			name: "already_applied",
			res:  text.RuleResult{Name: "line 12", Kind: text.KindLine, Outcome: text.OutcomeAlreadyApplied},
			want: "    • line 12                             line       already applied                ",
		},
		{
			name: "not_found",
			res:  text.RuleResult{Name: "replace foo", Kind: text.KindLiteral, Outcome: text.OutcomeNotFound},
			want: "    - replace foo                         literal    not found                      ",
		},
		{
			name: "out_of_range",
			res:  text.RuleResult{Name: "line 99", Kind: text.KindLine, Outcome: text.OutcomeOutOfRange},
			want: "    ✗ line 99                             line       line out of range, not applied ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRuleResult(tt.res), "formatted output should match")
		})
	}
}
