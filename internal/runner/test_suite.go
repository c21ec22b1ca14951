package runner

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"mvdan.cc/sh/v3/shell"

	"github.com/rostan-t/refery/pkg/logging"
)

// TestSuite is an ordered group of test cases sharing setup and teardown
// commands. A suite is meant to be run once.
type TestSuite struct {
	Name  string
	Tests []*TestCase
	// Setup and Teardown run around every case, including skipped ones
	Setup    string
	Teardown string
	// Fatal stops the suite at the first failure or error
	Fatal     bool
	Verbosity Verbosity
}

// Run executes the cases in declaration order and returns 1 if any of them
// failed or errored, 0 otherwise. Results are sent to presenter as they come
// and the collected records are handed to sink once the suite is over; both
// may be nil.
func (s *TestSuite) Run(ctx context.Context, presenter Presenter, sink ReportSink) int {
	if presenter == nil {
		presenter = nopPresenter{}
	}

	names := make([]string, 0, len(s.Tests))
	for _, tc := range s.Tests {
		names = append(names, tc.Name)
	}
	presenter.SuiteStarted(s.Name, names)

	report := SuiteReport{
		Name:      s.Name,
		Timestamp: time.Now(),
		Records:   make([]Record, 0, len(s.Tests)),
	}

	status := 0
	for i, tc := range s.Tests {
		if ctx.Err() != nil {
			logging.Warn("runner", "Suite %s interrupted, %d test(s) not run", s.Name, len(s.Tests)-i)
			break
		}

		presenter.TestStarted(tc.Name)
		start := time.Now()
		s.runHook(ctx, "setup", tc.Name, s.Setup)
		result := tc.Run(ctx)
		s.runHook(context.WithoutCancel(ctx), "teardown", tc.Name, s.Teardown)
		result.Elapsed = time.Since(start)

		report.Records = append(report.Records, newRecord(s.Name, result))
		presenter.TestFinished(s.filter(result))

		if result.Outcome.Failed() {
			status = 1
			if s.Fatal {
				logging.Info("runner", "Fatal suite %s stopped after %s, %d test(s) not run", s.Name, tc.Name, len(s.Tests)-i-1)
				break
			}
		}
	}

	report.Elapsed = time.Since(report.Timestamp)
	if sink != nil {
		sink.AddSuite(report)
	}
	return status
}

// filter strips from result what the suite verbosity does not show.
func (s *TestSuite) filter(result Result) Result {
	switch {
	case s.Verbosity <= Silent:
		result.Discrepancies = nil
		result.Command = ""
		result.Stdout, result.Stderr = "", ""
	case s.Verbosity == Normal:
		result.Command = ""
		result.Stdout, result.Stderr = "", ""
	default:
		if result.Outcome != Success {
			result.Stdout, result.Stderr = "", ""
		}
	}
	if result.Outcome == Success {
		result.Discrepancies = nil
	}
	return result
}

// runHook runs a setup or teardown command line. Hooks are best effort:
// failures are logged and never change the outcome of the test.
func (s *TestSuite) runHook(ctx context.Context, kind, test, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	fields, err := shell.Fields(line, nil)
	if err != nil {
		logging.Warn("runner", "Cannot parse %s command %q of suite %s: %v", kind, line, s.Name, err)
		return
	}
	if len(fields) == 0 {
		return
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		logging.Debug("runner", "%s of %s printed: %s", kind, test, strings.TrimRight(string(output), "\n"))
	}
	if err != nil {
		logging.Warn("runner", "%s of %s failed: %v", kind, test, err)
	}
}
