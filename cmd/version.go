package cmd

import (
	"fmt"

	"github.com/alexiusacademia/movload/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of movload",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Two moving point loads on a simply supported beam")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
