package main

import (
	"fmt"
	"strings"

	"github.com/gddoc/gddoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	keys, err := deps.Lister.ListSymbols()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gddoc.ErrorMessage(err))
		return err
	}

	if len(keys) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached symbols. Run 'gddoc update' to generate the cache.")
		return nil
	}

	for _, key := range keys {
		if c.Prefix != "" && !strings.HasPrefix(key, c.Prefix) {
			continue
		}
		fmt.Fprintln(deps.Stdout, key)
	}

	return nil
}
