package obt

import (
	"fmt"
	"math"
)

// Entry is one archive slot: metadata plus, for write-mode entries, the
// payload awaiting finalization.
//
// An entry is either bound to an on-disk location (read mode) or holds an
// in-memory payload (write mode), never both. Read-mode entries carry no
// payload; bytes are fetched on demand through the archive's file handle.
type Entry struct {
	offset     uint32
	size       uint32
	compressed bool
	payload    []byte
	bound      bool
}

// Offset returns the payload's byte offset from the start of the file.
// Meaningful only after a successful Load or Finalize.
func (e *Entry) Offset() uint32 {
	return e.offset
}

// Size returns the payload length in bytes.
func (e *Entry) Size() uint32 {
	return e.size
}

// Compressed reports the entry's compression flag. The flag is informational;
// the archive never interprets it.
func (e *Entry) Compressed() bool {
	return e.compressed
}

// bind marks the entry as loaded from an on-disk record.
func (e *Entry) bind(offset, size uint32, compressed bool) error {
	if e.bound {
		return fmt.Errorf("%w: entry is already bound", ErrInvalidOperation)
	}
	e.offset = offset
	e.size = size
	e.compressed = compressed
	e.bound = true
	return nil
}

// SetPayload stores the payload for a write-mode entry and derives its size.
//
// Setting a payload on an entry already bound to an on-disk location fails
// with ErrInvalidOperation; overwriting would silently discard the parsed
// metadata.
func (e *Entry) SetPayload(payload []byte) error {
	if e.bound {
		return fmt.Errorf("%w: cannot overwrite a loaded entry", ErrInvalidOperation)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: payload of %d bytes does not fit a 32-bit size field",
			ErrSizeOverflow, len(payload))
	}
	e.payload = payload
	e.size = uint32(len(payload))
	return nil
}

func (e *Entry) String() string {
	if e.bound {
		return fmt.Sprintf("Entry at offset %#x and size %#x (%d), compressed: %t",
			e.offset, e.size, e.size, e.compressed)
	}
	return "Uninitialized Entry"
}
