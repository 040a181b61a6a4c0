// Package godot invokes the locally installed engine binary to produce the
// structured API description document.
package godot

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gddoc/gddoc"
)

// Ensure Dumper implements gddoc.APIDumper at compile time.
var _ gddoc.APIDumper = (*Dumper)(nil)

// Dumper runs the engine with a fixed argument list in a working directory.
// The engine writes extension_api.json into that directory as a side effect;
// success is exit code 0 and nothing else.
type Dumper struct {
	binary  string
	workDir string
}

// NewDumper creates a Dumper that runs binary with workDir as its working
// directory. binary defaults to "godot" when empty.
func NewDumper(binary, workDir string) *Dumper {
	if binary == "" {
		binary = "godot"
	}
	return &Dumper{binary: binary, workDir: workDir}
}

// Dump runs the engine and returns the produced document's raw bytes.
// Returns EGODOT if the binary cannot be run or exits nonzero.
func (d *Dumper) Dump(ctx context.Context) ([]byte, error) {
	if err := os.MkdirAll(d.workDir, 0755); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, d.binary, "--headless", "--dump-extension-api")
	cmd.Dir = d.workDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, gddoc.Errorf(gddoc.EGODOT, "running %s failed: %v: %s", d.binary, err, truncateOutput(out))
	}

	data, err := os.ReadFile(filepath.Join(d.workDir, "extension_api.json"))
	if err != nil {
		return nil, gddoc.Errorf(gddoc.EGODOT, "%s exited cleanly but produced no API description: %v", d.binary, err)
	}
	return data, nil
}

func truncateOutput(out []byte) string {
	const max = 200
	if len(out) <= max {
		return string(out)
	}
	return string(out[:max]) + "..."
}
