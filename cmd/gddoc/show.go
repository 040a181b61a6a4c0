package main

import (
	"bytes"
	"fmt"

	"github.com/gddoc/gddoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if !deps.Store.Populated() {
		fmt.Fprintln(deps.Stderr, "Documentation cache is empty, generating...")
		if _, err := deps.Generator.Generate(deps.Ctx, false); err != nil {
			if gddoc.ErrorCode(err) == gddoc.EGODOT {
				fmt.Fprintln(deps.Stderr, "Hint: Set GDDOC_GODOT to the path of your Godot binary")
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", gddoc.ErrorMessage(err))
			return err
		}
	}

	var md bytes.Buffer
	if err := deps.Store.ReadSymbol(c.Symbol, &md); err != nil {
		if gddoc.ErrorCode(err) == gddoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: symbol %q not found. Use 'gddoc list' to see cached symbols.\n", c.Symbol)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gddoc.ErrorMessage(err))
		}
		return err
	}

	if c.Raw || deps.Renderer == nil {
		fmt.Fprint(deps.Stdout, md.String())
		return nil
	}

	styled, err := deps.Renderer.Render(md.String())
	if err != nil {
		// Raw Markdown beats no output.
		fmt.Fprint(deps.Stdout, md.String())
		return nil
	}
	fmt.Fprint(deps.Stdout, styled)
	return nil
}
