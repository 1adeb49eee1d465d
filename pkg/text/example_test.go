package text_test

import (
	"fmt"

	"github.com/walteh/patchrc/pkg/text"
)

func ExampleApplyRules() {
	doc := "    'timeTypeYearly': 'Yearly Review',\n    'timeTypeFree': 'Free Review',\n"

	rules := text.RuleSet{
		text.LineRule{
			Name:    "fix japanese free review",
			Line:    2,
			Guard:   "    'timeTypeFree': 'Free Review',",
			Replace: "    'timeTypeFree': '自由レビュー',",
		},
		text.LiteralRule{
			Old: "'oldKey': 'Old Value'",
			New: "'oldKey': 'New Value'",
		},
	}

	patched, report, err := text.ApplyRules(doc, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(patched)
	for _, res := range report.Results {
		fmt.Printf("%s: %s\n", res.Name, res.Outcome)
	}
	fmt.Println(report.Summary())

	// Output:
	//     'timeTypeYearly': 'Yearly Review',
	//     'timeTypeFree': '自由レビュー',
	// fix japanese free review: applied
	// replace 'oldKey': 'Old Value': not found
	// 1/2 rules applied, 1 replacements
}

func ExamplePatternRule() {
	doc := `<option value="yearly">Yearly</option>`

	patched, _, err := text.ApplyRules(doc, text.RuleSet{
		text.PatternRule{
			Pattern: `(<option value="yearly">.*?</option>)`,
			Replace: `$1<option value="free">Free</option>`,
		},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(patched)

	// Output:
	// <option value="yearly">Yearly</option><option value="free">Free</option>
}
