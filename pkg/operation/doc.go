/*
Package operation applies configured patches to files on disk.

	+-------------+
	|   Config    |
	|  (patches)  |
	+------+------+
	       | Plan
	+------+------+
	|  Operation  |  one per target file
	|   (patch)   |
	+------+------+
	       | Runner
	+------+------+      +-------------+
	| text.Apply  +----->+    Store    |
	|  (memory)   |      | (atomic IO) |
	+-------------+      +-------------+

🎯 Purpose:
- Turn each configured patch into one operation per target file
- Apply the rule set in memory, report each rule outcome, then persist
- Run operations sequentially, or concurrently across distinct files

🔄 Flow of a PatchOperation:
1. Read the whole document from the store
2. Apply every rule in declaration order (text.Patcher)
3. Print the rule outcomes (log.Logger)
4. If unchanged: stop, nothing is written
5. If dry run: render a unified diff and stop
6. Optionally back up, then overwrite atomically

⚡ Failure model:
- A rule that matches nothing is reported, never an error
- An unreadable file or an invalid pattern fails the operation before any write
- The runner stops at the first failed operation

🔍 Example:

	ops, err := operation.Plan(cfg, operation.PlanOptions{
		Store:   store.NewLocal(),
		Patcher: text.NewPatcher(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(zerolog.Ctx(ctx), cfg.Flags.Async).RunAll(ctx, ops)
*/
package operation
