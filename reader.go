package obt

import (
	"fmt"
	"os"
)

// Load opens the archive file and parses its header table.
//
// Load may be called exactly once on an unopened Archive; it transitions the
// archive to read mode on success. Any validation failure closes the file
// and leaves the archive unusable; no partial state is exposed. A missing
// file surfaces the platform's standard not-found error.
func (a *Archive) Load() error {
	if a.mode != ModeUnopened {
		return fmt.Errorf("%w: file is already opened", ErrInvalidOperation)
	}

	f, err := os.Open(a.filename)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	entries, totalSize, err := parseHeader(f, info.Size())
	if err != nil {
		f.Close()
		return err
	}

	a.file = f
	a.entries = entries
	a.totalSize = totalSize
	a.mode = ModeRead

	a.log().Info("archive loaded",
		"filename", a.filename,
		"entries", len(entries),
		"total_size", totalSize)
	return nil
}

// ExportEntry returns the raw payload bytes of the entry at the given index,
// along with its compression flag.
//
// The bytes are returned verbatim; no decompression is performed. The
// archive must be in read mode and the index must be a valid record index.
func (a *Archive) ExportEntry(index int) ([]byte, bool, error) {
	if a.mode != ModeRead {
		return nil, false, fmt.Errorf("%w: file is not opened for reading", ErrInvalidOperation)
	}
	e, ok := a.Entry(index)
	if !ok {
		return nil, false, fmt.Errorf("%w: entry %d not found in file", ErrInvalidOperation, index)
	}

	payload := make([]byte, e.size)
	if e.size > 0 {
		if _, err := a.file.ReadAt(payload, int64(e.offset)); err != nil {
			return nil, false, fmt.Errorf("obt: read entry %d: %w", index, err)
		}
	}
	return payload, e.compressed, nil
}
