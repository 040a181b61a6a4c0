// Package snapshot persists the raw API description in a checksummed binary
// envelope so the engine dump can be reused across invocations. The format
// is deliberately simple and non-extensible: a version mismatch invalidates
// the file outright, there is no migration.
package snapshot

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"

	"github.com/gddoc/gddoc"
)

// Magic identifies a gddoc snapshot file.
const Magic = "GDDC"

// Version is the single supported format version. Any other value in the
// header invalidates the file.
const Version uint32 = 1

// headerSize is magic (4) + version (4) + checksum (4).
const headerSize = 12

// Ensure Store implements gddoc.SnapshotStore at compile time.
var _ gddoc.SnapshotStore = (*Store)(nil)

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes data to the snapshot file, create-or-truncate. The header
// carries the magic constant, the current version, and the IEEE CRC32 of
// the payload, each as a fixed-width little-endian integer.
func (s *Store) Save(data []byte) error {
	buf := make([]byte, headerSize+len(data))
	copy(buf, Magic)
	binary.LittleEndian.PutUint32(buf[4:], Version)
	binary.LittleEndian.PutUint32(buf[8:], crc32.ChecksumIEEE(data))
	copy(buf[headerSize:], data)
	return os.WriteFile(s.path, buf, 0644)
}

// Load reads the snapshot file and returns the payload. Header fields are
// checked in order: magic, then version, then payload checksum. Each check
// has its own error code so callers can log what went stale, but every
// failure means the same thing: regenerate.
func (s *Store) Load() ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gddoc.Errorf(gddoc.ENOTFOUND, "no snapshot at %q", s.path)
		}
		return nil, err
	}
	defer f.Close()

	var header [headerSize]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, gddoc.Errorf(gddoc.ECACHEMAGIC, "snapshot %q too short for header", s.path)
	}

	if string(header[:4]) != Magic {
		return nil, gddoc.Errorf(gddoc.ECACHEMAGIC, "snapshot %q is not a gddoc snapshot", s.path)
	}
	if v := binary.LittleEndian.Uint32(header[4:8]); v != Version {
		return nil, gddoc.Errorf(gddoc.ECACHEVERSION, "snapshot %q has version %d, want %d", s.path, v, Version)
	}

	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	want := binary.LittleEndian.Uint32(header[8:12])
	if got := crc32.ChecksumIEEE(payload); got != want {
		return nil, gddoc.Errorf(gddoc.ECHECKSUM, "snapshot %q checksum mismatch: got %08x, want %08x", s.path, got, want)
	}

	return payload, nil
}
