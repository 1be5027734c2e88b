package entryname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		index      int
		compressed bool
	}{
		{"data.obt.entry0.bin", 0, false},
		{"data.obt.entry12.bin.clz77", 12, true},
		{"out/dir/data.obt.entry3.bin", 3, false},
		{"weird.name.with.dots.entry42.bin.clz77", 42, true},
	}
	for _, tt := range tests {
		index, compressed, err := Parse(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.index, index, tt.name)
		assert.Equal(t, tt.compressed, compressed, tt.name)
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	names := []string{
		"data.obt",
		"data.obt.entry.bin",
		"data.obt.entry0.bin.gz",
		"data.obt.entry0.clz77",
		"entry0.bin.backup",
		"",
	}
	for _, name := range names {
		_, _, err := Parse(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data.obt.entry0.bin", Format("data.obt", 0, false))
	assert.Equal(t, "data.obt.entry7.bin.clz77", Format("data.obt", 7, true))
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for index, compressed := range map[int]bool{0: false, 1: true, 999: true} {
		name := Format("x.obt", index, compressed)
		gotIndex, gotCompressed, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, index, gotIndex)
		assert.Equal(t, compressed, gotCompressed)
	}
}
