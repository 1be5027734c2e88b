package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meigma/obt"
	"github.com/meigma/obt/internal/entryname"
)

// NewExtractCommand returns the "extract" subcommand.
func NewExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <filename> [outdir]",
		Short: "extract the entries of an OBT archive",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			filename := args[0]
			outdir := "."
			if len(args) == 2 {
				outdir = args[1]
			}
			n, err := runExtract(filename, outdir, os.Stdout)
			if err != nil {
				cmdFailedf(cmd, "could not extract %s: %s", filename, err)
			}
			color.Green("Successfully extracted %d entries from %s.", n, filename)
		},
	}
}

// runExtract loads the archive and writes every entry to outdir using the
// .entry<N>.bin[.clz77] naming convention. The output directory is created
// if absent. Returns the number of entries written.
func runExtract(filename, outdir string, out io.Writer) (int, error) {
	if _, err := os.Stat(filename); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return 0, err
	}

	a := obt.New(filename)
	if err := a.Load(); err != nil {
		return 0, err
	}
	defer a.Close()

	fmt.Fprintln(out, a)

	base := filepath.Base(filename)
	for i := 0; i < a.Len(); i++ {
		e, _ := a.Entry(i)
		fmt.Fprintln(out, e)

		data, compressed, err := a.ExportEntry(i)
		if err != nil {
			return i, err
		}
		outpath := filepath.Join(outdir, entryname.Format(base, i, compressed))
		if err := os.WriteFile(outpath, data, 0o644); err != nil {
			return i, err
		}
	}
	return a.Len(), nil
}
