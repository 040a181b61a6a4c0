package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/gddoc/gddoc/apijson"
	"github.com/gddoc/gddoc/bbcode"
	"github.com/gddoc/gddoc/docgen"
	"github.com/gddoc/gddoc/fs"
	"github.com/gddoc/gddoc/glamour"
	"github.com/gddoc/gddoc/godot"
	gddocslog "github.com/gddoc/gddoc/slog"
	"github.com/gddoc/gddoc/snapshot"
)

// snapshotFileName is the checksummed raw-source cache inside the cache root.
const snapshotFileName = "api.snapshot"

// renderWidth is the word-wrap width for terminal output.
const renderWidth = 100

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache root directory. Set before calling Run().
	CacheDir string

	// Engine binary name or path. Set before calling Run().
	GodotBin string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
		GodotBin: os.Getenv("GDDOC_GODOT"),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gddoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gddoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := fs.NewStore(m.CacheDir)
	deps.Store = store
	deps.Lister = store
	deps.Generator = &docgen.Generator{
		Dumper:   gddocslog.NewLoggingDumper(godot.NewDumper(m.GodotBin, m.CacheDir), logger),
		Parser:   apijson.NewParser(bbcode.NewConverter()),
		Snapshot: snapshot.NewStore(filepath.Join(m.CacheDir, snapshotFileName)),
		Store:    store,
		Logger:   logger,
	}

	// A failed renderer setup is not fatal: commands print raw Markdown
	// when no renderer is available.
	if r, err := glamour.NewRenderer(renderWidth); err == nil {
		deps.Renderer = r
	}

	return kongCtx.Run(deps)
}

func defaultCacheDir() string {
	if path := os.Getenv("GDDOC_CACHE"); path != "" {
		return path
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "gddoc-cache"
	}
	return filepath.Join(base, "gddoc")
}
