package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"robogen/internal/dialect"
	"robogen/internal/tools"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available selector dialects and tools",
	RunE:  runListCommand,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runListCommand(cmd *cobra.Command, args []string) error {
	fmt.Println("Selector dialects:")
	for _, name := range dialect.Names() {
		marker := ""
		if name == string(dialect.DefaultID) {
			marker = " (default)"
		}
		fmt.Printf("  %s%s\n", name, marker)
	}

	fmt.Println()
	fmt.Println("Tools:")
	for _, t := range tools.All() {
		fmt.Printf("  %-36s", t.Name)
		var required []string
		for _, p := range t.Params {
			if p.Required {
				required = append(required, p.Name)
			}
		}
		if len(required) > 0 {
			fmt.Printf(" requires: %v", required)
		}
		fmt.Println()
	}

	return nil
}
