package gddoc

// TermRenderer renders Markdown into styled terminal output.
// Callers fall back to printing the raw Markdown when Render fails.
type TermRenderer interface {
	Render(markdown string) (string, error)
}
