package obt

import (
	"fmt"
	"os"
)

// OpenWrite creates the archive file and transitions to write mode.
//
// If the target path already exists and overwrite is false, OpenWrite fails
// without touching the file. With overwrite set, the existing contents are
// truncated. OpenWrite may be called exactly once on an unopened Archive.
func (a *Archive) OpenWrite(overwrite bool) error {
	if a.mode != ModeUnopened {
		return fmt.Errorf("%w: file is already opened", ErrInvalidOperation)
	}

	if !overwrite {
		if _, err := os.Stat(a.filename); err == nil {
			return fmt.Errorf("%w: will not overwrite %s unless explicitly enabled",
				ErrInvalidOperation, a.filename)
		}
	}

	f, err := os.Create(a.filename)
	if err != nil {
		return err
	}

	a.file = f
	a.mode = ModeWrite
	return nil
}

// AddEntry appends a payload to the archive with the given compression flag.
//
// The entry's index is its position in the sequence, assigned purely by call
// order; callers needing a specific on-disk ordering must add entries in
// that order. The flag is recorded verbatim, never interpreted. The payload
// slice is retained until Finalize; callers must not modify it.
func (a *Archive) AddEntry(payload []byte, compressed bool) error {
	if a.mode != ModeWrite {
		return fmt.Errorf("%w: archive has not been opened for writing", ErrInvalidOperation)
	}
	if a.sealed {
		return fmt.Errorf("%w: archive is already finalized", ErrInvalidOperation)
	}

	e := &Entry{compressed: compressed}
	if err := e.SetPayload(payload); err != nil {
		return err
	}
	a.entries = append(a.entries, e)
	return nil
}

// Finalize computes entry offsets and writes the header table followed by
// all payloads in index order.
//
// This is a single irreversible pass: offsets are assigned contiguously
// starting immediately after the header, so entry 0's offset field doubles
// as the header size. Finalize fails if no entries were added, and a
// finalized archive rejects further AddEntry and Finalize calls.
func (a *Archive) Finalize() error {
	if a.mode != ModeWrite {
		return fmt.Errorf("%w: archive has not been opened for writing", ErrInvalidOperation)
	}
	if a.sealed {
		return fmt.Errorf("%w: archive is already finalized", ErrInvalidOperation)
	}
	if len(a.entries) == 0 {
		return fmt.Errorf("%w: no entries to write", ErrInvalidOperation)
	}

	header, err := encodeHeader(a.entries)
	if err != nil {
		return err
	}

	if _, err := a.file.WriteAt(header, 0); err != nil {
		return fmt.Errorf("obt: write header: %w", err)
	}

	pos := int64(len(header))
	for i, e := range a.entries {
		if _, err := a.file.WriteAt(e.payload, pos); err != nil {
			return fmt.Errorf("obt: write entry %d: %w", i, err)
		}
		pos += int64(e.size)
	}

	// Sealed entries are now bound to their on-disk locations; the in-memory
	// payloads are no longer needed.
	for _, e := range a.entries {
		e.payload = nil
		e.bound = true
	}
	a.totalSize = uint64(pos)
	a.sealed = true

	a.log().Info("archive finalized",
		"filename", a.filename,
		"entries", len(a.entries),
		"total_size", a.totalSize)
	return nil
}
