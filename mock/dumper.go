package mock

import (
	"context"

	"github.com/gddoc/gddoc"
)

var _ gddoc.APIDumper = (*APIDumper)(nil)

// APIDumper is a mock implementation of gddoc.APIDumper.
type APIDumper struct {
	DumpFn func(ctx context.Context) ([]byte, error)
}

func (d *APIDumper) Dump(ctx context.Context) ([]byte, error) {
	return d.DumpFn(ctx)
}
