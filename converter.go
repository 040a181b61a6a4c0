package gddoc

// Converter converts engine documentation markup (BBCode) to Markdown.
type Converter interface {
	// Convert transforms annotated description text into Markdown.
	// Returns EINVALID if the markup is malformed.
	Convert(markup string) (string, error)
}
