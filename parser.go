package gddoc

import "io"

// Parser builds a symbol Database from a raw API description stream.
type Parser interface {
	// Parse consumes the whole document. Returns EINVALIDJSON if the
	// stream is syntactically malformed or ends prematurely; other I/O
	// errors propagate unchanged.
	Parse(r io.Reader) (*Database, error)
}
