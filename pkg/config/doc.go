/*
Package config manages configuration parsing and validation for patchrc.

	            +-------------+
	            |   Config    |
	            |  (Patches)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Loads the list of patches (target path + ordered rules)
- Validates every rule and compiles every pattern up front
- Converts serialized rules into a text.RuleSet

🔄 Flow:
1. Reads configuration from file
2. Picks a parser by extension
3. Validates patches, fills default names and flags
4. Hands patches to the operation package

📝 HCL layout:

	flags {
	  dry_run = false
	}

	patch "fix-ja-free-review" {
	  path = "public/static/i18n.js"

	  rule "line" {
	    line    = 1423
	    guard   = "'timeTypeFree': 'Free Review',"
	    match   = "contains"
	    replace = "    'timeTypeFree': '自由レビュー',"
	  }

	  rule "pattern" {
	    search = <<-EOT
	      <div class="flex-1">.*?<i class="fas fa-layer-group.*?</select>\s*</div>
	    EOT
	    flags   = ["dotall"]
	    replace = ""
	  }
	}

Rules of every kind share the single "rule" block type so their
declaration order survives decoding. HCL interpolates "${", so template
literals from JavaScript sources must be written as "$${" in HCL files.
Heredocs do not interpret backslash escapes, which makes them the easiest
place for regular expressions; they keep their trailing newline.

🔍 Example:

	cfg, err := config.Load(ctx, ".patchrc.hcl")
	if err != nil {
		return err
	}
	patches, err := cfg.Select("fix-ja-free-review")
*/
package config
