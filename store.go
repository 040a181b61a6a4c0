package gddoc

import "io"

// SnapshotStore persists the raw API description with integrity protection
// so the engine never has to be re-run while the snapshot stays valid.
type SnapshotStore interface {
	// Save writes data wrapped in a checksummed header.
	Save(data []byte) error

	// Load reads back the payload. Returns ECACHEMAGIC, ECACHEVERSION or
	// ECHECKSUM when the file is foreign, stale or corrupt, and ENOTFOUND
	// when it does not exist. Any of those means: regenerate.
	Load() ([]byte, error)
}

// MarkdownStore persists and retrieves per-symbol rendered Markdown, plus
// the raw source document the Markdown was generated from.
type MarkdownStore interface {
	// WriteSymbol renders sym against db and writes its Markdown file,
	// creating parent directories as needed.
	WriteSymbol(db *Database, sym *Symbol) error

	// ReadSymbol streams the cached Markdown for key to w.
	// Returns ENOTFOUND if the symbol has no cached file.
	ReadSymbol(key string, w io.Writer) error

	// Generate writes every symbol in db, in insertion order.
	Generate(db *Database) error

	// WriteSource persists the raw API description document the rendered
	// tree was generated from.
	WriteSource(data []byte) error

	// Populated reports whether the cache looks complete enough to serve
	// lookups without regenerating. Both the raw source document and a
	// known-stable rendered file must exist; the source alone could be a
	// partially-completed generation.
	Populated() bool
}

// SymbolLister enumerates the symbol keys present in a Markdown cache.
type SymbolLister interface {
	ListSymbols() ([]string, error)
}
