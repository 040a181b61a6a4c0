package mock

import (
	"io"

	"github.com/gddoc/gddoc"
)

var _ gddoc.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of gddoc.SnapshotStore.
type SnapshotStore struct {
	SaveFn func(data []byte) error
	LoadFn func() ([]byte, error)
}

func (s *SnapshotStore) Save(data []byte) error {
	return s.SaveFn(data)
}

func (s *SnapshotStore) Load() ([]byte, error) {
	return s.LoadFn()
}

var _ gddoc.MarkdownStore = (*MarkdownStore)(nil)
var _ gddoc.SymbolLister = (*MarkdownStore)(nil)

// MarkdownStore is a mock implementation of gddoc.MarkdownStore.
type MarkdownStore struct {
	WriteSymbolFn func(db *gddoc.Database, sym *gddoc.Symbol) error
	ReadSymbolFn  func(key string, w io.Writer) error
	GenerateFn    func(db *gddoc.Database) error
	WriteSourceFn func(data []byte) error
	PopulatedFn   func() bool
	ListSymbolsFn func() ([]string, error)
}

func (s *MarkdownStore) WriteSymbol(db *gddoc.Database, sym *gddoc.Symbol) error {
	return s.WriteSymbolFn(db, sym)
}

func (s *MarkdownStore) ReadSymbol(key string, w io.Writer) error {
	return s.ReadSymbolFn(key, w)
}

func (s *MarkdownStore) Generate(db *gddoc.Database) error {
	return s.GenerateFn(db)
}

func (s *MarkdownStore) WriteSource(data []byte) error {
	return s.WriteSourceFn(data)
}

func (s *MarkdownStore) Populated() bool {
	return s.PopulatedFn()
}

func (s *MarkdownStore) ListSymbols() ([]string, error) {
	return s.ListSymbolsFn()
}
