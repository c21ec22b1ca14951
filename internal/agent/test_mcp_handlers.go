package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rostan-t/refery/internal/config"
	"github.com/rostan-t/refery/internal/reporting"
	"github.com/rostan-t/refery/internal/runner"
)

// handleListTests handles the list_tests MCP tool
func (t *TestMCPServer) handleListTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := config.Load(request.GetString("test_file", t.testFile))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load test file: %v", err)), nil
	}

	type TestInfo struct {
		Name    string `json:"name"`
		Binary  string `json:"binary"`
		Skipped bool   `json:"skipped,omitempty"`
		Ref     string `json:"ref,omitempty"`
	}
	type SuiteInfo struct {
		Name  string     `json:"name"`
		Fatal bool       `json:"fatal,omitempty"`
		Tests []TestInfo `json:"tests"`
	}

	suites := doc.Suites()
	suiteList := make([]SuiteInfo, len(suites))
	for i, suite := range suites {
		info := SuiteInfo{Name: suite.Name, Fatal: suite.Fatal, Tests: make([]TestInfo, len(suite.Tests))}
		for j, test := range suite.Tests {
			info.Tests[j] = TestInfo{Name: test.GetName(), Binary: *test.Binary, Skipped: test.IsSkipped()}
			if test.Ref != nil {
				info.Tests[j].Ref = *test.Ref
			}
		}
		suiteList[i] = info
	}

	jsonData, err := json.MarshalIndent(suiteList, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format test list: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

type recordInfo struct {
	runner.Record
	Time float64 `json:"time"`
}

type suiteResult struct {
	Name  string       `json:"name"`
	Tests []recordInfo `json:"tests"`
}

type runResult struct {
	Succeeded bool              `json:"succeeded"`
	Summary   reporting.Summary `json:"summary"`
	Suites    []suiteResult     `json:"suites"`
	Report    string            `json:"report"`
}

// handleRunTests handles the run_tests MCP tool
func (t *TestMCPServer) handleRunTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	verbosity, err := runner.ParseVerbosity(request.GetString("verbosity", "normal"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := config.Load(request.GetString("test_file", t.testFile))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load test file: %v", err)), nil
	}

	opts := config.BuildOptions{Verbosity: verbosity}
	if suite := request.GetString("suite", ""); suite != "" {
		opts.Suites = []string{suite}
	}
	suites, err := config.BuildSuites(ctx, doc, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to prepare tests: %v", err)), nil
	}

	var report bytes.Buffer
	console := reporting.NewConsole(&report, reporting.WithInteractive(false))
	collector := reporting.NewCollector()
	for _, suite := range suites {
		suite.Run(ctx, console, collector)
	}
	summary := collector.Summary()
	console.PrintSummary(summary)

	result := runResult{
		Succeeded: summary.Succeeded(),
		Summary:   summary,
		Suites:    make([]suiteResult, 0, len(collector.Reports())),
		Report:    report.String(),
	}
	for _, suiteReport := range collector.Reports() {
		sr := suiteResult{Name: suiteReport.Name, Tests: make([]recordInfo, 0, len(suiteReport.Records))}
		for _, record := range suiteReport.Records {
			sr.Tests = append(sr.Tests, recordInfo{Record: record, Time: record.Seconds()})
		}
		result.Suites = append(result.Suites, sr)
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format test results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
