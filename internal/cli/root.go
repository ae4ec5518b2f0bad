// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "itemexport",
		Short: "itemexport - export live items from SQL Server to a gzipped CSV",
		Long: `itemexport connects to the items database, makes sure the Customer and Item
tables exist, exports the latest non-deleted version of every item to
csv/items-<date>.csv and compresses it into gzip/items-<date>.csv.gz.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewExtractCmd())

	return rootCmd
}
