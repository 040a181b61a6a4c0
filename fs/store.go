// Package fs provides file-based storage for rendered documentation.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gddoc/gddoc"
)

// SourceFileName is the raw API description file kept next to the rendered
// tree inside the cache root.
const SourceFileName = "extension_api.json"

// sentinelSymbol is a top-level symbol present in every engine version.
// Its rendered file doubles as the marker that generation ran to completion.
const sentinelSymbol = "Object"

// ResolveSymbolPath converts a symbol key to its file path under root.
// Member keys split on the first dot: "Node.add_child" → root/Node/add_child.md.
// Top-level keys get a directory of their own: "Node" → root/Node/index.md,
// so a class's index file and its member files live together.
func ResolveSymbolPath(root, key string) string {
	if owner, member, ok := strings.Cut(key, "."); ok {
		return filepath.Join(root, owner, member+".md")
	}
	return filepath.Join(root, key, "index.md")
}

// Ensure Store implements gddoc.MarkdownStore at compile time.
var _ gddoc.MarkdownStore = (*Store)(nil)

// Store writes and reads per-symbol Markdown files under a cache root.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// SourcePath returns the path of the cached raw API description.
func (s *Store) SourcePath() string {
	return filepath.Join(s.root, SourceFileName)
}

// WriteSymbol renders sym and writes it to its resolved path, creating
// parent directories as needed. Writes truncate: regeneration overwrites.
func (s *Store) WriteSymbol(db *gddoc.Database, sym *gddoc.Symbol) error {
	if err := sym.Validate(); err != nil {
		return err
	}

	fullPath := ResolveSymbolPath(s.root, sym.Key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := gddoc.RenderSymbol(db, sym)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// ReadSymbol streams the cached Markdown for key to w.
func (s *Store) ReadSymbol(key string, w io.Writer) error {
	f, err := os.Open(ResolveSymbolPath(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return gddoc.Errorf(gddoc.ENOTFOUND, "symbol %q not found", key)
		}
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// Generate writes every symbol in db, in insertion order. Each write is
// independent and idempotent, so order does not affect correctness.
func (s *Store) Generate(db *gddoc.Database) error {
	return db.Each(func(_ int, sym *gddoc.Symbol) error {
		return s.WriteSymbol(db, sym)
	})
}

// WriteSource persists the raw API description inside the cache root.
func (s *Store) WriteSource(data []byte) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.SourcePath(), data, 0644)
}

// Populated reports whether lookups can be served without regenerating.
// Requires both the raw source document and the sentinel class's rendered
// file: the source alone could be left over from an interrupted generation.
func (s *Store) Populated() bool {
	if _, err := os.Stat(s.SourcePath()); err != nil {
		return false
	}
	if _, err := os.Stat(ResolveSymbolPath(s.root, sentinelSymbol)); err != nil {
		return false
	}
	return true
}

// ListSymbols walks the rendered tree and reconstructs the cached symbol
// keys, lexically ordered by directory walk.
func (s *Store) ListSymbols() ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == s.root && os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		owner := filepath.Dir(rel)
		if owner == "." {
			return nil
		}
		member := strings.TrimSuffix(filepath.Base(rel), ".md")
		if member == "index" {
			keys = append(keys, owner)
		} else {
			keys = append(keys, owner+"."+member)
		}
		return nil
	})
	return keys, err
}
