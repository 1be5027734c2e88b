package command

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meigma/obt"
	"github.com/meigma/obt/internal/entryname"
)

var (
	createOutput    string
	createOverwrite bool
)

// NewCreateCommand returns the "create" subcommand.
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create -o <path> <entry files...>",
		Short: "create an OBT archive from files extracted with the \"extract\" command",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n, err := runCreate(createOutput, createOverwrite, args)
			if err != nil {
				cmdFailedf(cmd, "could not create %s: %s", createOutput, err)
			}
			color.Green("Successfully repacked %d entries into %s.", n, createOutput)
		},
	}
	cmd.Flags().StringVarP(&createOutput, "output", "o", "", "output OBT file path")
	cmd.Flags().BoolVarP(&createOverwrite, "overwrite", "w", false,
		"overwrite the output file if it already exists")
	cmd.MarkFlagRequired("output")
	return cmd
}

// entryFile is one validated input to the create command.
type entryFile struct {
	index      int
	compressed bool
	name       string
}

// collectEntryFiles validates the input filenames eagerly, before any
// archive I/O begins: every name must follow the .entry<N>.bin[.clz77]
// convention, indices must be unique, and every file must exist. The result
// is sorted by parsed index, so on-disk ordering is index order regardless
// of argument order.
func collectEntryFiles(names []string) ([]entryFile, error) {
	seen := make(map[int]struct{}, len(names))
	files := make([]entryFile, 0, len(names))
	for _, name := range names {
		index, compressed, err := entryname.Parse(name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[index]; ok {
			return nil, fmt.Errorf("duplicate entry with index %d", index)
		}
		if _, err := os.Stat(name); err != nil {
			return nil, err
		}
		seen[index] = struct{}{}
		files = append(files, entryFile{index: index, compressed: compressed, name: name})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].index < files[j].index })
	return files, nil
}

// runCreate validates the inputs, then packs them into a new archive at
// output. No output file is produced when validation fails.
func runCreate(output string, overwrite bool, names []string) (int, error) {
	files, err := collectEntryFiles(names)
	if err != nil {
		return 0, err
	}

	a := obt.New(output)
	if err := a.OpenWrite(overwrite); err != nil {
		return 0, err
	}
	defer a.Close()

	for _, f := range files {
		data, err := os.ReadFile(f.name)
		if err != nil {
			return 0, err
		}
		if err := a.AddEntry(data, f.compressed); err != nil {
			return 0, err
		}
	}
	if err := a.Finalize(); err != nil {
		return 0, err
	}
	return len(files), nil
}
