package mock

import (
	"io"

	"github.com/gddoc/gddoc"
)

var _ gddoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of gddoc.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*gddoc.Database, error)
}

func (p *Parser) Parse(r io.Reader) (*gddoc.Database, error) {
	return p.ParseFn(r)
}
