package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rostan-t/refery/internal/agent"
	"github.com/rostan-t/refery/internal/config"
	"github.com/rostan-t/refery/pkg/logging"
)

var mcpTestFile string

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the test file over MCP (stdio transport)",
		Long: `Run an MCP server on standard input and output that exposes the
test file as tools:

- list_tests: list the test suites and test cases
- run_tests:  run the test suites and return the results as JSON

Configure it in your AI assistant's MCP settings. Logs are written to
standard error.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
	cmd.Flags().StringVarP(&mcpTestFile, "test-file", "f", "", "Default test file of the tools (default: refery.yaml in the current directory)")
	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	path, err := config.ResolvePath(mcpTestFile)
	if err != nil {
		return err
	}

	server := agent.NewTestMCPServer(path, rootCmd.Version)
	logging.Info("cli", "Starting refery MCP server for %s (stdio transport)", path)
	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
