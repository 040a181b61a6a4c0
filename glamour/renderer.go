// Package glamour renders Markdown documentation for the terminal using
// charmbracelet/glamour.
package glamour

import (
	"github.com/charmbracelet/glamour"

	"github.com/gddoc/gddoc"
)

// Ensure Renderer implements gddoc.TermRenderer at compile time.
var _ gddoc.TermRenderer = (*Renderer)(nil)

// Renderer renders Markdown into styled terminal output.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer creates a Renderer word-wrapped at width columns. Style is
// auto-detected from the terminal background.
func NewRenderer(width int) (*Renderer, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr}, nil
}

// Render returns the styled terminal output for markdown. Callers print the
// raw Markdown instead when Render fails.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.tr.Render(markdown)
}
