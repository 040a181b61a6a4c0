package mock

import "github.com/gddoc/gddoc"

var _ gddoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of gddoc.Converter.
type Converter struct {
	ConvertFn func(markup string) (string, error)
}

func (c *Converter) Convert(markup string) (string, error) {
	return c.ConvertFn(markup)
}

// PassthroughConverter returns a Converter that returns its input unchanged.
func PassthroughConverter() *Converter {
	return &Converter{ConvertFn: func(markup string) (string, error) {
		return markup, nil
	}}
}
