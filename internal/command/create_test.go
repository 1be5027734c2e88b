package command

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/obt/internal/entryname"
)

// writeEntryFiles creates input files in dir and returns their paths.
func writeEntryFiles(t *testing.T, dir string, contents map[string][]byte) []string {
	t.Helper()
	names := make([]string, 0, len(contents))
	for name, content := range contents {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0o644))
		names = append(names, path)
	}
	return names
}

func TestCollectEntryFilesSorts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := writeEntryFiles(t, dir, map[string][]byte{
		"x.obt.entry2.bin":       []byte("c"),
		"x.obt.entry0.bin":       []byte("a"),
		"x.obt.entry1.bin.clz77": []byte("b"),
	})

	files, err := collectEntryFiles(names)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{files[0].index, files[1].index, files[2].index})
	assert.True(t, files[1].compressed)
}

// Duplicate indices must be rejected before any file is opened for writing,
// even when the two names differ in their compression suffix.
func TestCollectEntryFilesDuplicateIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := writeEntryFiles(t, dir, map[string][]byte{
		"x.obt.entry0.bin":       []byte("a"),
		"y.obt.entry0.bin.clz77": []byte("b"),
	})

	_, err := collectEntryFiles(names)
	require.Error(t, err)
	assert.ErrorContains(t, err, "duplicate entry with index 0")
}

func TestCollectEntryFilesBadName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "not-an-entry.dat")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := collectEntryFiles([]string{path})
	assert.ErrorIs(t, err, entryname.ErrInvalidName)
}

func TestCollectEntryFilesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := collectEntryFiles([]string{filepath.Join(t.TempDir(), "x.obt.entry0.bin")})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// No output file may be produced when validation fails.
func TestRunCreateValidatesBeforeWriting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "out.obt")

	_, err := runCreate(output, false, []string{filepath.Join(dir, "bogus.dat")})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestCreateExtractRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	contents := map[string][]byte{
		"src.obt.entry0.bin":       []byte("first entry"),
		"src.obt.entry1.bin.clz77": {0x1f, 0x8b, 0x00},
		"src.obt.entry2.bin":       bytes.Repeat([]byte("payload "), 100),
	}
	names := writeEntryFiles(t, dir, contents)

	archive := filepath.Join(dir, "packed.obt")
	n, err := runCreate(archive, false, names)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	outdir := filepath.Join(dir, "extracted")
	n, err = runExtract(archive, outdir, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for name, want := range contents {
		// Extracted names are keyed to the archive's basename.
		index, compressed, parseErr := entryname.Parse(name)
		require.NoError(t, parseErr)
		outname := entryname.Format("packed.obt", index, compressed)

		got, readErr := os.ReadFile(filepath.Join(outdir, outname))
		require.NoError(t, readErr, outname)
		assert.Equal(t, want, got, outname)
	}
}

func TestRunExtractMissingArchive(t *testing.T) {
	t.Parallel()

	_, err := runExtract(filepath.Join(t.TempDir(), "nope.obt"), t.TempDir(), io.Discard)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
