// Package docgen orchestrates cache regeneration: obtain the raw API
// description (snapshot first, engine dump as fallback), parse it into a
// symbol database, and write the per-symbol Markdown tree plus a fresh
// snapshot. Corrupt or stale caches are never served; they are replaced.
package docgen

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/gddoc/gddoc"
)

// Generator coordinates one full cache regeneration.
type Generator struct {
	Dumper   gddoc.APIDumper
	Parser   gddoc.Parser
	Snapshot gddoc.SnapshotStore
	Store    gddoc.MarkdownStore
	Logger   *slog.Logger
}

// Result holds the outcome of a generation run.
type Result struct {
	Symbols      int
	FromSnapshot bool
}

// Generate runs the pipeline. With force set, any existing snapshot is
// ignored and the engine is always re-run. Without it, a valid snapshot
// avoids the engine entirely; an absent, stale or corrupt snapshot falls
// back to a fresh dump. Only "no snapshot and no working engine" fails.
func (g *Generator) Generate(ctx context.Context, force bool) (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var data []byte
	fromSnapshot := false
	if !force {
		loaded, err := g.Snapshot.Load()
		switch code := gddoc.ErrorCode(err); {
		case err == nil:
			data = loaded
			fromSnapshot = true
		case code == gddoc.ENOTFOUND || code == gddoc.ECACHEMAGIC ||
			code == gddoc.ECACHEVERSION || code == gddoc.ECHECKSUM:
			logger.Warn("snapshot unusable, re-running engine", "code", code)
		default:
			return nil, err
		}
	}

	if data == nil {
		dumped, err := g.Dumper.Dump(ctx)
		if err != nil {
			return nil, err
		}
		data = dumped
	}

	db, err := g.Parser.Parse(bytes.NewReader(data))
	if err != nil && fromSnapshot && gddoc.ErrorCode(err) == gddoc.EINVALIDJSON {
		// The snapshot passed its checksum but holds an unparseable
		// document, e.g. written by a different engine build. Treat it
		// like any other stale cache.
		logger.Warn("snapshot contents unparseable, re-running engine")
		fromSnapshot = false
		if data, err = g.Dumper.Dump(ctx); err != nil {
			return nil, err
		}
		db, err = g.Parser.Parse(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if err := g.Store.WriteSource(data); err != nil {
		return nil, err
	}
	if err := g.Store.Generate(db); err != nil {
		return nil, err
	}
	if !fromSnapshot {
		if err := g.Snapshot.Save(data); err != nil {
			return nil, err
		}
	}

	logger.Info("cache generated",
		"symbols", db.Len(),
		"from_snapshot", fromSnapshot,
	)
	return &Result{Symbols: db.Len(), FromSnapshot: fromSnapshot}, nil
}
