// Package agent exposes refery to AI assistants as an MCP (Model Context
// Protocol) server.
//
// TestMCPServer serves two tools over the stdio transport:
//
//   - list_tests lists the suites and tests of a test file.
//   - run_tests runs them and returns the per-test records, the summary and
//     the rendered console report as JSON.
//
// Example usage:
//
//	server := agent.NewTestMCPServer("refery.yaml", version)
//	if err := server.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Stdout carries the MCP protocol, so nothing else may write to it while the
// server runs; logs go to stderr.
package agent
