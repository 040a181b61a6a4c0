package gddoc

import "context"

// APIDumper produces the raw structured API description document.
// Implementations hide how the document is obtained (running the engine
// binary, reading a pre-downloaded artifact).
type APIDumper interface {
	// Dump writes the API description and returns its raw bytes.
	// Returns EGODOT if the producing program is unavailable or fails.
	Dump(ctx context.Context) ([]byte, error)
}
