package main

import (
	"fmt"

	"github.com/gddoc/gddoc"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	result, err := deps.Generator.Generate(deps.Ctx, true)
	if err != nil {
		if gddoc.ErrorCode(err) == gddoc.EGODOT {
			fmt.Fprintln(deps.Stderr, "Hint: Set GDDOC_GODOT to the path of your Godot binary")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", gddoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated documentation for %d symbols.\n", result.Symbols)
	return nil
}
