package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pnl",
		Short:   "Twelve-month profit and loss ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newEditCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}
