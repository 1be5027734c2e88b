package obt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// parseHeader reads and validates the header table from r, which must span
// fileSize bytes, and returns the bound entries together with the declared
// total size (header plus all payloads).
//
// Validation order matches the format's failure taxonomy: the header size
// must be readable, the header must fit the file, the size must divide into
// whole records, every record's compression flag must be 0 or 1, and the
// declared total must not exceed the actual file size. The header size is
// recovered from the first 4 bytes, which by construction equal entry 0's
// offset field.
func parseHeader(r io.ReaderAt, fileSize int64) ([]*Entry, uint64, error) {
	if fileSize < 4 {
		return nil, 0, fmt.Errorf("%w: could not read header size", ErrInvalidArchive)
	}

	var sizeField [4]byte
	if _, err := r.ReadAt(sizeField[:], 0); err != nil {
		return nil, 0, fmt.Errorf("obt: read header size: %w", err)
	}
	headerSize := binary.LittleEndian.Uint32(sizeField[:])

	if fileSize < int64(headerSize) {
		return nil, 0, fmt.Errorf("%w: could not read header", ErrInvalidArchive)
	}
	// The original format trusts this value blindly and truncates a ragged
	// header size down to whole records. Reject instead: the first 4 bytes
	// must equal entryCount * 12 exactly.
	if headerSize%recordSize != 0 {
		return nil, 0, fmt.Errorf("%w: header size %d is not a multiple of %d",
			ErrInvalidArchive, headerSize, recordSize)
	}

	header := make([]byte, headerSize)
	if headerSize > 0 {
		if _, err := r.ReadAt(header, 0); err != nil {
			return nil, 0, fmt.Errorf("obt: read header: %w", err)
		}
	}

	entryCount := int(headerSize / recordSize)
	entries := make([]*Entry, 0, entryCount)
	totalSize := uint64(headerSize)

	for i := 0; i < entryCount; i++ {
		record := header[i*recordSize:]
		offset := binary.LittleEndian.Uint32(record[0:4])
		size := binary.LittleEndian.Uint32(record[4:8])
		flag := binary.LittleEndian.Uint32(record[8:12])

		if flag != 0 && flag != 1 {
			return nil, 0, fmt.Errorf("%w: unknown compression method %d in entry %d",
				ErrInvalidArchive, flag, i)
		}

		e := &Entry{}
		if err := e.bind(offset, size, flag == 1); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
		totalSize += uint64(size)
	}

	if uint64(fileSize) < totalSize {
		return nil, 0, fmt.Errorf("%w: not enough data in file", ErrInvalidArchive)
	}

	return entries, totalSize, nil
}

// encodeHeader builds the header table for the given entries, assigning
// contiguous offsets starting immediately after the header. Offsets are
// written into the entries as a side effect so they match the file.
func encodeHeader(entries []*Entry) ([]byte, error) {
	headerSize := uint64(len(entries)) * recordSize
	total := headerSize
	for _, e := range entries {
		total += uint64(e.size)
	}
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: archive of %d bytes does not fit 32-bit offsets",
			ErrSizeOverflow, total)
	}

	header := make([]byte, 0, headerSize)
	offset := uint32(headerSize)
	for _, e := range entries {
		e.offset = offset

		var record [recordSize]byte
		binary.LittleEndian.PutUint32(record[0:4], e.offset)
		binary.LittleEndian.PutUint32(record[4:8], e.size)
		var flag uint32
		if e.compressed {
			flag = 1
		}
		binary.LittleEndian.PutUint32(record[8:12], flag)

		header = append(header, record[:]...)
		offset += e.size
	}
	return header, nil
}
