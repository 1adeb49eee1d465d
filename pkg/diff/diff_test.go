package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified(t *testing.T) {
	t.Run("equal_documents", func(t *testing.T) {
		out, err := Unified("i18n.js", "a\nb\n", "a\nb\n")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("single_line_change", func(t *testing.T) {
		before := "one\n    'timeTypeFree': 'Free Review',\nthree\n"
		after := "one\n    'timeTypeFree': '自由レビュー',\nthree\n"

		out, err := Unified("i18n.js", before, after)
		require.NoError(t, err)

		assert.Contains(t, out, "--- a/i18n.js")
		assert.Contains(t, out, "+++ b/i18n.js")
		assert.Contains(t, out, "-    'timeTypeFree': 'Free Review',\n")
		assert.Contains(t, out, "+    'timeTypeFree': '自由レビュー',\n")
		assert.Contains(t, out, " one\n", "context lines should be kept")
	})
}
