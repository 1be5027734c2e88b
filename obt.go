// Package obt reads and writes OBT archives.
//
// An OBT archive is a header table of fixed 12-byte records followed by the
// entry payloads concatenated in the same order. Each record holds three
// little-endian uint32 fields: the payload's byte offset from the start of
// the file, its size, and a compression flag. The flag is carried verbatim;
// the package never compresses or decompresses payload bytes.
//
// The header table's own size is not stored explicitly. Entries are written
// contiguously starting immediately after the header, so entry 0's offset
// field doubles as the header size and the first 4 bytes of any archive,
// read as a little-endian uint32, equal entryCount * 12.
//
// An Archive moves through its lifecycle exactly once: New returns it
// unopened, Load binds it to an existing file for reading, OpenWrite binds
// it to a new file for writing. The transition is one-way; opening twice
// fails with ErrInvalidOperation.
package obt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// recordSize is the on-disk size of one header record:
// offset(4) + size(4) + compressedFlag(4).
const recordSize = 12

// Sentinel errors.
var (
	// ErrInvalidArchive is returned when a file fails format validation.
	ErrInvalidArchive = errors.New("obt: invalid archive")

	// ErrInvalidOperation is returned when an operation is attempted in the
	// wrong mode, such as exporting from an unopened archive or adding
	// entries to a finalized one.
	ErrInvalidOperation = errors.New("obt: invalid operation")

	// ErrSizeOverflow is returned when byte counts exceed the format's
	// 32-bit offset and size fields.
	ErrSizeOverflow = errors.New("obt: size overflow")
)

// Mode identifies the lifecycle state of an Archive.
type Mode uint8

const (
	ModeUnopened Mode = iota
	ModeRead
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeUnopened:
		return "unopened"
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Archive is a single OBT file, opened for either reading or writing.
//
// An Archive owns at most one open file handle for its entire lifetime.
// Callers must Close it on every path once Load or OpenWrite has succeeded.
// Archive is not safe for concurrent use.
type Archive struct {
	filename  string
	file      *os.File
	mode      Mode
	entries   []*Entry
	totalSize uint64
	sealed    bool
	logger    *slog.Logger
}

// New returns an unopened Archive for the given path.
//
// The file is not touched until Load or OpenWrite is called.
func New(filename string, opts ...Option) *Archive {
	a := &Archive{filename: filename}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mode returns the archive's current lifecycle state.
func (a *Archive) Mode() Mode {
	return a.mode
}

// Len returns the number of entries in the archive.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Entry returns the entry at the given index.
// Returns false if the index is out of range.
func (a *Archive) Entry(index int) (*Entry, bool) {
	if index < 0 || index >= len(a.entries) {
		return nil, false
	}
	return a.entries[index], true
}

// Close releases the archive's file handle. It is safe to call on an
// archive that was never opened, and safe to call more than once.
func (a *Archive) Close() error {
	if a.file == nil {
		return nil
	}
	f := a.file
	a.file = nil
	return f.Close()
}

func (a *Archive) String() string {
	return fmt.Sprintf("Archive %s with %d entries, total size: %d",
		a.filename, len(a.entries), a.totalSize)
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.logger
}
