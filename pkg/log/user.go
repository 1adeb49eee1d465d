package log

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger prints top-level messages for the person running the command
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📦 LogPatchCount logs the number of rules in a validated patch
func (u *UserLogger) LogPatchCount(name, path string, rules int) {
	msg := fmt.Sprintf("%s → %s (%d rules)", name, path, rules)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	u.log.Info().Str("patch", name).Str("path", path).Int("rules", rules).Msg("patch loaded")
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
	u.log.Warn().Msg(description)
}

// ❌ LogFailure logs an error that stopped the run
func (u *UserLogger) LogFailure(description string, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		pterm.Error.Println(err)
	}
	u.log.Error().Err(err).Msg(description)
}
