// Package entryname encodes an entry's index and compression state into the
// output filename convention used by the extract and create commands:
// <base>.entry<N>.bin for plain entries and <base>.entry<N>.bin.clz77 for
// entries whose compressed flag is set.
package entryname

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidName is returned when a filename does not follow the
// .entry<N>.bin[.clz77] convention.
var ErrInvalidName = errors.New("entryname: invalid entry file name")

const (
	suffixPlain      = ".bin"
	suffixCompressed = ".bin.clz77"
)

var pattern = regexp.MustCompile(`\.entry(\d+)(\.bin(?:\.clz77)?)$`)

// Parse extracts the entry index and compression state from a filename.
func Parse(name string) (index int, compressed bool, err error) {
	m := pattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	index, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	return index, m[2] == suffixCompressed, nil
}

// Format returns the filename for the entry at the given index of base.
func Format(base string, index int, compressed bool) string {
	suffix := suffixPlain
	if compressed {
		suffix = suffixCompressed
	}
	return fmt.Sprintf("%s.entry%d%s", base, index, suffix)
}
