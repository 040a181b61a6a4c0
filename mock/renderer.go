package mock

import "github.com/gddoc/gddoc"

var _ gddoc.TermRenderer = (*TermRenderer)(nil)

// TermRenderer is a mock implementation of gddoc.TermRenderer.
type TermRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *TermRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
