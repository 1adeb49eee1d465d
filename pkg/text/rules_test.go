package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOne(t *testing.T, doc string, rule Rule) (string, RuleResult) {
	t.Helper()
	got, report, err := ApplyRules(doc, RuleSet{rule})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	return got, report.Results[0]
}

func TestLineRule(t *testing.T) {
	doc := "first\r\n    'timeTypeFree': 'Free Review',\r\nlast"

	t.Run("keeps_crlf_terminator", func(t *testing.T) {
		got, res := applyOne(t, doc, LineRule{
			Line:    2,
			Guard:   "    'timeTypeFree': 'Free Review',",
			Replace: "    'timeTypeFree': 'Revisión Libre',",
		})
		assert.Equal(t, "first\r\n    'timeTypeFree': 'Revisión Libre',\r\nlast", got)
		assert.Equal(t, OutcomeApplied, res.Outcome)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("contains_match", func(t *testing.T) {
		got, res := applyOne(t, doc, LineRule{
			Line:    2,
			Guard:   "'timeTypeFree': 'Free Review',",
			Match:   MatchContains,
			Replace: "    'timeTypeFree': '自由レビュー',",
		})
		assert.Equal(t, "first\r\n    'timeTypeFree': '自由レビュー',\r\nlast", got)
		assert.Equal(t, OutcomeApplied, res.Outcome)
	})

	t.Run("last_line_without_terminator", func(t *testing.T) {
		got, res := applyOne(t, doc, LineRule{Line: 3, Guard: "last", Replace: "final"})
		assert.Equal(t, "first\r\n    'timeTypeFree': 'Free Review',\r\nfinal", got)
		assert.Equal(t, OutcomeApplied, res.Outcome)
	})

	t.Run("out_of_range", func(t *testing.T) {
		got, res := applyOne(t, doc, LineRule{Line: 4, Guard: "last", Replace: "final"})
		assert.Equal(t, doc, got)
		assert.Equal(t, OutcomeOutOfRange, res.Outcome)
		assert.Equal(t, "document has 3 lines", res.Detail)
	})

	t.Run("guard_mismatch_detail", func(t *testing.T) {
		_, res := applyOne(t, doc, LineRule{Line: 1, Guard: "second", Replace: "2nd"})
		assert.Equal(t, OutcomeGuardMismatch, res.Outcome)
		assert.Equal(t, `line 1 is "first"`, res.Detail)
		assert.Equal(t, "line 1", res.Name)
		assert.Equal(t, KindLine, res.Kind)
	})
}

func TestLiteralRule(t *testing.T) {
	t.Run("limit_replaces_first_occurrences", func(t *testing.T) {
		got, res := applyOne(t, "Yearly Yearly Yearly", LiteralRule{Old: "Yearly", New: "Free", Limit: 2})
		assert.Equal(t, "Free Free Yearly", got)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("non_overlapping", func(t *testing.T) {
		got, res := applyOne(t, "aaaa", LiteralRule{Old: "aa", New: "b"})
		assert.Equal(t, "bb", got)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("describe_abbreviates", func(t *testing.T) {
		_, res := applyOne(t, "x", LiteralRule{Old: "line one\nline two", New: "y"})
		assert.Equal(t, "replace line one…", res.Name)
		assert.Equal(t, OutcomeNotFound, res.Outcome)
	})
}

const appFixture = `function renderForm(review) {
  return ` + "`" + `
    <div class="flex-1">
      <label><i class="fas fa-layer-group mr-1"></i>${i18n.t('groupType')}</label>
      <select id="review-group-type">
        <option value="personal">${i18n.t('groupTypePersonal')}</option>
      </select>
    </div>
    <div class="flex-1">
      <select id="review-time-type">
        <option value="yearly">${i18n.t('timeTypeYearly')}</option>
      </select>
    </div>
  ` + "`" + `;
}
const data = { title, group_type: groupType, time_type };
const other = { group_type: 'personal' };
const third = { owner, group_type: value };
`

func TestPatternRule(t *testing.T) {
	t.Run("dotall_removes_multiline_block", func(t *testing.T) {
		got, res := applyOne(t, appFixture, PatternRule{
			Pattern: `<div class="flex-1">.*?<i class="fas fa-layer-group.*?</select>\s*</div>`,
			Flags:   []Flag{FlagDotAll},
		})
		assert.Equal(t, OutcomeApplied, res.Outcome)
		assert.Equal(t, 1, res.Count)
		assert.NotContains(t, got, "review-group-type")
		assert.Contains(t, got, "review-time-type", "the following block should survive")
	})

	t.Run("without_dotall_block_does_not_match", func(t *testing.T) {
		got, res := applyOne(t, appFixture, PatternRule{
			Pattern: `<div class="flex-1">.*?<i class="fas fa-layer-group.*?</select>\s*</div>`,
		})
		assert.Equal(t, OutcomeNotFound, res.Outcome)
		assert.Equal(t, appFixture, got)
	})

	t.Run("removes_every_group_type_field", func(t *testing.T) {
		got, res := applyOne(t, appFixture, PatternRule{
			Pattern: `,?\s*group_type[,:]\s*['\w]+`,
		})
		assert.Equal(t, 3, res.Count)
		assert.NotContains(t, got, "group_type")
		assert.Contains(t, got, "const data = { title, time_type };")
	})

	t.Run("template_expansion", func(t *testing.T) {
		got, res := applyOne(t, appFixture, PatternRule{
			Pattern: `(<option value="yearly">\$\{i18n\.t\('timeTypeYearly'\)\}</option>)`,
			Replace: "${1}\n        <option value=\"free\">FREE</option>",
		})
		assert.Equal(t, 1, res.Count)
		assert.Contains(t, got, "timeTypeYearly')}</option>\n        <option value=\"free\">FREE</option>")
	})

	t.Run("literal_replacement_keeps_dollar_braces", func(t *testing.T) {
		got, _ := applyOne(t, `<option value="yearly">Y</option>`, PatternRule{
			Pattern: `<option value="yearly">Y</option>`,
			Replace: `$1 <option value="free">${i18n.t('timeTypeFree')}</option>`,
			Literal: true,
		})
		assert.Equal(t, `$1 <option value="free">${i18n.t('timeTypeFree')}</option>`, got)
	})

	t.Run("ignore_case_and_limit", func(t *testing.T) {
		got, res := applyOne(t, "Free free FREE", PatternRule{
			Pattern: `free`,
			Replace: "libre",
			Flags:   []Flag{FlagIgnoreCase},
			Limit:   2,
		})
		assert.Equal(t, "libre libre FREE", got)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("multiline_anchors", func(t *testing.T) {
		got, res := applyOne(t, "    'groupType': 'A',\n    'keep': 'B',\n    'groupTypeTeam': 'C',\n", PatternRule{
			Pattern: `^    'groupType\w*': '.*?',\n`,
			Flags:   []Flag{FlagMultiline},
		})
		assert.Equal(t, "    'keep': 'B',\n", got)
		assert.Equal(t, 2, res.Count)
	})
}

func TestInsertRule(t *testing.T) {
	doc := strings.Join([]string{
		"  zh: {",
		"    'timeTypeYearly': '年复盘',",
		"  },",
		"  en: {",
		"    'timeTypeYearly': 'Yearly Review',",
		"  },",
		"  ja: {",
		"    'timeTypeYearly': 'Yearly Review',",
		"  },",
		"",
	}, "\n")

	t.Run("inserts_after_every_anchor", func(t *testing.T) {
		got, res := applyOne(t, doc, InsertRule{
			Anchor: "    'timeTypeYearly': 'Yearly Review',",
			Text:   "\n    'timeTypeFree': 'Free Review',",
		})
		assert.Equal(t, OutcomeApplied, res.Outcome)
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, 2, strings.Count(got, "'timeTypeFree': 'Free Review',"))

		again, res := applyOne(t, got, InsertRule{
			Anchor: "    'timeTypeYearly': 'Yearly Review',",
			Text:   "\n    'timeTypeFree': 'Free Review',",
		})
		assert.Equal(t, got, again)
		assert.Equal(t, OutcomeAlreadyApplied, res.Outcome)
	})

	t.Run("inserts_before_with_limit", func(t *testing.T) {
		got, res := applyOne(t, doc, InsertRule{
			Anchor:   "  },",
			Text:     "    // end\n",
			Position: PositionBefore,
			Limit:    1,
		})
		assert.Equal(t, 1, res.Count)
		assert.True(t, strings.HasPrefix(got, "  zh: {\n    'timeTypeYearly': '年复盘',\n    // end\n  },\n  en: {"))
		assert.Equal(t, 1, strings.Count(got, "// end"))
	})

	t.Run("missing_anchor", func(t *testing.T) {
		got, res := applyOne(t, doc, InsertRule{Anchor: "  es: {", Text: "x"})
		assert.Equal(t, doc, got)
		assert.Equal(t, OutcomeNotFound, res.Outcome)
	})
}
