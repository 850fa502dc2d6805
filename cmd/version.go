package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"robogen/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("robogen %s (%s)\n", version.GetVersion(), version.Platform())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
