package main

import (
	"context"
	"io"

	"github.com/gddoc/gddoc"
	"github.com/gddoc/gddoc/docgen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Store     gddoc.MarkdownStore
	Lister    gddoc.SymbolLister
	Generator *docgen.Generator
	Renderer  gddoc.TermRenderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Show   ShowCmd   `cmd:"" help:"Show documentation for a symbol"`
	Update UpdateCmd `cmd:"" help:"Regenerate the documentation cache"`
	List   ListCmd   `cmd:"" help:"List cached symbols"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Symbol string `arg:"" help:"Symbol key, e.g. Node or Node.add_child"`
	Raw    bool   `short:"r" help:"Print raw Markdown without terminal styling"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Prefix string `arg:"" optional:"" help:"Only list symbols starting with this prefix"`
}
