package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"headline/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show detailed version information",
	Long: `Show the headline version together with the git commit and build date
baked in at build time.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), version.Full())
}
