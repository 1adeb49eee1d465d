package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/store"
	"github.com/walteh/patchrc/pkg/text"
)

const commandConfig = `
patches:
  - name: ja
    path: i18n.js
    rules:
      - kind: literal
        old: "'timeTypeFree': 'Free Review'"
        new: "'timeTypeFree': '自由レビュー'"
      - kind: literal
        old: "'oldKey': 'Old Value'"
        new: "'newKey': 'New Value'"
`

func setup(t *testing.T, cfgData string) (context.Context, string, *bytes.Buffer, *opts.RootOpts) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	zlog := zerolog.New(zerolog.NewTestWriter(t))
	ctx := zlog.WithContext(context.Background())

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "patchrc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "i18n.js"), []byte("'timeTypeFree': 'Free Review',\n"), 0644))

	cfg, err := config.Load(ctx, cfgPath)
	require.NoError(t, err)

	console := &bytes.Buffer{}
	ctx = log.NewContext(ctx, log.NewWithZerolog(console, zlog))
	return ctx, dir, console, &opts.RootOpts{
		Config:     cfg,
		UserLogger: log.NewUserLogger(ctx),
		Store:      store.NewLocal(),
		Patcher:    text.NewPatcher(),
	}
}

func readFile(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestApplyCmd(t *testing.T) {
	t.Run("writes_changes_and_reports_not_found", func(t *testing.T) {
		ctx, dir, console, o := setup(t, commandConfig)

		cmd := NewApplyCmd(o)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.ExecuteContext(ctx), "a rule without a match is not an error")

		assert.Equal(t, "'timeTypeFree': '自由レビュー',\n", readFile(t, filepath.Join(dir, "i18n.js")))
		assert.Contains(t, console.String(), "patchrc • applying patches")
		assert.Contains(t, console.String(), "1 target file(s) selected")
		assert.Contains(t, console.String(), "not found")
		assert.Contains(t, console.String(), "summary 1 file changed")
		assert.NotContains(t, console.String(), "dry run")
	})

	t.Run("dry_run", func(t *testing.T) {
		ctx, dir, console, o := setup(t, commandConfig)

		cmd := NewApplyCmd(o)
		cmd.SetArgs([]string{"--dry-run"})
		require.NoError(t, cmd.ExecuteContext(ctx))

		assert.Equal(t, "'timeTypeFree': 'Free Review',\n", readFile(t, filepath.Join(dir, "i18n.js")))
		assert.Contains(t, console.String(), "would change")
		assert.Contains(t, console.String(), "dry run: 1 file(s) left untouched")
	})

	t.Run("unknown_patch_name", func(t *testing.T) {
		ctx, _, _, o := setup(t, commandConfig)

		cmd := NewApplyCmd(o)
		cmd.SetArgs([]string{"nope"})
		err := cmd.ExecuteContext(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown patch "nope"`)
	})

	t.Run("missing_target_fails", func(t *testing.T) {
		ctx, dir, console, o := setup(t, commandConfig)
		require.NoError(t, os.Remove(filepath.Join(dir, "i18n.js")))

		cmd := NewApplyCmd(o)
		cmd.SetArgs([]string{})
		err := cmd.ExecuteContext(ctx)
		require.Error(t, err)

		var ioErr *store.IOError
		assert.ErrorAs(t, err, &ioErr)
		assert.Contains(t, console.String(), "1 failed")
	})
}

func TestCheckCmd(t *testing.T) {
	ctx, dir, console, o := setup(t, commandConfig)

	cmd := NewCheckCmd(o)
	cmd.SetArgs([]string{"ja"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Equal(t, "'timeTypeFree': 'Free Review',\n", readFile(t, filepath.Join(dir, "i18n.js")), "check never writes")
	assert.Contains(t, console.String(), "+'timeTypeFree': '自由レビュー',")
}

func TestValidateCmd(t *testing.T) {
	ctx, _, _, o := setup(t, commandConfig)

	cmd := NewValidateCmd(o)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(ctx))

	cmd = NewValidateCmd(o)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.ExecuteContext(ctx), "validate takes no arguments")
}
