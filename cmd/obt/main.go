// obt is a command line application that extracts, creates, and inspects
// OBT archives.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/meigma/obt/internal/command"
)

const (
	cliName        = "obt"
	cliDescription = "the command-line tool for OBT archives"
)

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: cliDescription,
}

func init() {
	rootCmd.AddCommand(
		command.NewExtractCommand(),
		command.NewCreateCommand(),
		command.NewInspectCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
