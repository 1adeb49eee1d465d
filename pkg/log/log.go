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
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/text"
)

// 🎨 Display configuration
const (
	ruleIndent    = 4  // spaces to indent rule entries
	nameWidth     = 35 // Base width for rule name
	kindWidth     = 10 // Width for rule kind
	outcomeWidth  = 30 // Width for outcome text
	detailMaxSize = 60 // Longest detail printed on the console
)

// 🎯 PatchEntry is the console record of one patch applied to one file
type PatchEntry struct {
	Patch   string       // Patch name
	Path    string       // Target file
	Report  *text.Report // Rule outcomes, nil when the patch failed before applying
	Written bool         // Whether the file was written
	DryRun  bool         // Whether writing was suppressed
	Diff    string       // Pending change, printed when set
	Err     error        // Fatal error for this file
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	entries []PatchEntry
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a new logger that mirrors console lines to zlog
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatRuleResult formats a rule outcome for display
func formatRuleResult(res text.RuleResult) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch res.Outcome {
	case text.OutcomeApplied:
		symbol = '✓'
		symbolColor = color.FgGreen
	case text.OutcomeAlreadyApplied:
		symbol = '•'
		symbolColor = color.FgCyan
	case text.OutcomeNotFound:
		symbol = '-'
		symbolColor = color.FgYellow
	default:
		symbol = '✗'
		symbolColor = color.FgRed
	}

	count := ""
	if res.Count > 0 {
		count = fmt.Sprintf("×%d", res.Count)
	}

	// Build the line
	line := fmt.Sprintf("%s%s %s %s %s %s",
		fmt.Sprintf("%*s", ruleIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, res.Name),
		color.New(color.FgBlue).Sprint(fmt.Sprintf("%-*s", kindWidth, res.Kind)),
		fmt.Sprintf("%-*s", outcomeWidth, res.Outcome.String()),
		count)

	if res.Detail != "" && !res.Matched() {
		detail := []rune(res.Detail)
		if len(detail) > detailMaxSize {
			detail = append(detail[:detailMaxSize], '…')
		}
		line += "\n" + fmt.Sprintf("%*s", ruleIndent+2, "") + color.New(color.Faint).Sprint(string(detail))
	}

	return line
}

// 📝 fileStatus returns the closing status of a patch entry
func fileStatus(e PatchEntry) (string, color.Attribute) {
	switch {
	case e.Err != nil:
		return "failed", color.FgRed
	case e.Report == nil || !e.Report.Changed:
		return "unchanged", color.Faint
	case e.DryRun:
		return "would change", color.FgYellow
	case e.Written:
		return "written", color.FgGreen
	default:
		return "changed", color.FgBlue
	}
}

// 📝 LogPatch prints the header, rule lines and status of one patched file.
// The whole block is printed under one lock so concurrent patches never interleave.
func (l *Logger) LogPatch(ctx context.Context, e PatchEntry) {
	var b strings.Builder

	fmt.Fprintf(&b, "[patching %s]\n", color.New(color.FgCyan).Sprint(e.Path))
	fmt.Fprintf(&b, "%s %s", color.New(color.FgMagenta).Sprint("◆"), color.New(color.Bold).Sprint(e.Patch))
	if e.Report != nil {
		fmt.Fprintf(&b, " %s %s", color.New(color.Faint).Sprint("•"), color.New(color.FgYellow).Sprint(e.Report.Summary()))
	}
	b.WriteString("\n")

	if e.Report != nil {
		for _, res := range e.Report.Results {
			b.WriteString(formatRuleResult(res))
			b.WriteString("\n")
		}
	}

	status, statusColor := fileStatus(e)
	fmt.Fprintf(&b, "%*s%s\n", ruleIndent, "", color.New(statusColor).Sprint(status))
	if e.Err != nil {
		fmt.Fprintf(&b, "%*s%s\n", ruleIndent, "", color.New(color.FgRed).Sprint(e.Err.Error()))
	}
	if e.Diff != "" {
		b.WriteString(e.Diff)
		if !strings.HasSuffix(e.Diff, "\n") {
			b.WriteString("\n")
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	fmt.Fprint(l.console, b.String())

	// Log to zerolog
	if e.Report != nil {
		for _, res := range e.Report.Results {
			l.zlog.Info().
				Str("file", e.Path).
				Str("patch", e.Patch).
				Int("rule", res.Index).
				Str("name", res.Name).
				Str("kind", string(res.Kind)).
				Str("outcome", string(res.Outcome)).
				Int("count", res.Count).
				Msg("rule outcome")
		}
	}
	ev := l.zlog.Info()
	if e.Err != nil {
		ev = l.zlog.Error().Err(e.Err)
	}
	ev.Str("file", e.Path).
		Str("patch", e.Patch).
		Str("status", status).
		Bool("dry_run", e.DryRun).
		Msg("patch complete")
}

// 📝 Summary prints the final line for all patches logged so far
func (l *Logger) Summary() {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed, failed := 0, 0
	for _, e := range l.entries {
		switch {
		case e.Err != nil:
			failed++
		case e.Report != nil && e.Report.Changed:
			changed++
		}
	}

	var msg string
	switch {
	case changed == 0:
		msg = "no changes"
	case changed == 1:
		msg = "1 file changed"
	default:
		msg = fmt.Sprintf("%d files changed", changed)
	}
	if failed > 0 {
		msg += fmt.Sprintf(", %d failed", failed)
	}

	fmt.Fprintf(l.console, "\n%s %s\n", color.New(color.Bold).Sprint("summary"), msg)
	l.zlog.Info().Int("changed", changed).Int("failed", failed).Int("files", len(l.entries)).Msg(msg)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("patchrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
