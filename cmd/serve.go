package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"robogen/internal/dialect"
	"robogen/internal/mcp"
	"robogen/internal/version"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generators and validator as MCP tools over stdio",
	Long: `Serve every robogen tool over the Model Context Protocol: JSON-RPC 2.0
messages, one per line, on stdin/stdout. Intended to be spawned by an MCP
client; logs go to stderr so the protocol stream stays clean.

Example MCP client configuration:
  {"command": "robogen", "args": ["serve"]}`,
	RunE: runServeCommand,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	// Only print the banner when a human started us from a terminal; an
	// MCP client owns stdin and expects protocol frames only.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "robogen %s serving MCP on stdio\n", version.GetVersion())
		fmt.Fprintf(os.Stderr, "Selector dialects: %v\n", dialect.Names())
		fmt.Fprintln(os.Stderr, "Waiting for JSON-RPC requests on stdin (Ctrl+D to exit)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(os.Stdin, os.Stdout, toolOptions(), logger)

	return server.Serve(ctx)
}
