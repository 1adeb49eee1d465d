package opts

import (
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/store"
	"github.com/walteh/patchrc/pkg/text"
)

// RootOpts is filled in before any subcommand runs.
// The console logger travels in the command context, see log.FromContext.
type RootOpts struct {
	Config     *config.Config
	UserLogger *log.UserLogger
	Store      store.Store
	Patcher    text.Patcher
}
