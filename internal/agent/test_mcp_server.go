package agent

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rostan-t/refery/pkg/logging"
)

// TestMCPServer serves refery tools over MCP.
type TestMCPServer struct {
	testFile string
	server   *server.MCPServer
}

// NewTestMCPServer creates a server whose tools default to testFile.
func NewTestMCPServer(testFile, version string) *TestMCPServer {
	t := &TestMCPServer{
		testFile: testFile,
		server: server.NewMCPServer(
			"refery",
			version,
			server.WithToolCapabilities(false),
		),
	}
	t.registerTools()
	return t
}

func (t *TestMCPServer) registerTools() {
	t.server.AddTool(mcp.NewTool("list_tests",
		mcp.WithDescription("List the test suites and test cases of a refery test file"),
		mcp.WithString("test_file",
			mcp.Description("Path to the YAML test file (defaults to the file the server was started with)"),
		),
	), t.handleListTests)

	t.server.AddTool(mcp.NewTool("run_tests",
		mcp.WithDescription("Run the tests of a refery test file and report their outcomes"),
		mcp.WithString("test_file",
			mcp.Description("Path to the YAML test file (defaults to the file the server was started with)"),
		),
		mcp.WithString("suite",
			mcp.Description("Only run the test suite with this name"),
		),
		mcp.WithString("verbosity",
			mcp.Description("Verbosity of the rendered report"),
			mcp.Enum("silent", "normal", "verbose"),
		),
	), t.handleRunTests)
}

// Start serves the tools on stdin and stdout until ctx is cancelled or
// stdin is closed.
func (t *TestMCPServer) Start(ctx context.Context) error {
	logging.Info("agent", "Serving MCP tools for %s on stdio", t.testFile)
	return server.NewStdioServer(t.server).Listen(ctx, os.Stdin, os.Stdout)
}
