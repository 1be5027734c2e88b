package command

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/meigma/obt"
)

// NewInspectCommand returns the "inspect" subcommand.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <filename>",
		Short: "show the entry table of an OBT archive",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runInspect(args[0], os.Stdout); err != nil {
				cmdFailedf(cmd, "could not inspect %s: %s", args[0], err)
			}
		},
	}
}

// runInspect loads the archive and renders its entry table.
func runInspect(filename string, out io.Writer) error {
	a := obt.New(filename)
	if err := a.Load(); err != nil {
		return err
	}
	defer a.Close()

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Index", "Offset", "Size", "Compressed"})
	for i := 0; i < a.Len(); i++ {
		e, _ := a.Entry(i)
		t.AppendRow(table.Row{i, fmt.Sprintf("%#x", e.Offset()), e.Size(), e.Compressed()})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.SetOutputMirror(out)
	t.Render()

	fmt.Fprintln(out, a)
	return nil
}
