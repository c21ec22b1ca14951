package runner

import (
	"strings"
	"time"

	"github.com/rostan-t/refery/internal/diff"
)

// Result is what a presenter receives for one test case.
type Result struct {
	// Name of the test case
	Name string
	// Outcome of the run
	Outcome Outcome
	// Command is the shell-quoted invocation; empty unless shown
	Command string
	// Stdout and Stderr hold the captured output; empty unless shown
	Stdout string
	Stderr string
	// Discrepancies explain a non-successful outcome
	Discrepancies []diff.Discrepancy
	// Elapsed covers setup, run and teardown
	Elapsed time.Duration
}

// Record is the report-sink view of one executed test case.
type Record struct {
	Name      string        `json:"name"`
	Classname string        `json:"classname"`
	Outcome   Outcome       `json:"outcome"`
	Elapsed   time.Duration `json:"-"`
	Message   string        `json:"message,omitempty"`
	Details   string        `json:"details,omitempty"`
	Stdout    string        `json:"stdout,omitempty"`
	Stderr    string        `json:"stderr,omitempty"`
}

// Seconds returns the elapsed time in seconds.
func (r Record) Seconds() float64 {
	return r.Elapsed.Seconds()
}

func newRecord(suite string, result Result) Record {
	details := make([]string, 0, len(result.Discrepancies))
	for _, d := range result.Discrepancies {
		details = append(details, d.String())
	}
	return Record{
		Name:      result.Name,
		Classname: suite + "." + result.Name,
		Outcome:   result.Outcome,
		Elapsed:   result.Elapsed,
		Message:   result.Outcome.ReportMessage(),
		Details:   strings.Join(details, "\n\n"),
		Stdout:    result.Stdout,
		Stderr:    result.Stderr,
	}
}

// SuiteReport collects the records of one suite run.
type SuiteReport struct {
	Name      string
	Timestamp time.Time
	Elapsed   time.Duration
	Records   []Record
}

// Presenter receives suite and test events as they happen.
type Presenter interface {
	// SuiteStarted is called once before the first test of a suite.
	SuiteStarted(name string, tests []string)
	// TestStarted is called before the setup command of a test runs.
	TestStarted(name string)
	// TestFinished receives the result, filtered by the suite verbosity.
	TestFinished(result Result)
}

// ReportSink receives one report per suite run.
type ReportSink interface {
	AddSuite(report SuiteReport)
}

type nopPresenter struct{}

func (nopPresenter) SuiteStarted(string, []string) {}
func (nopPresenter) TestStarted(string)            {}
func (nopPresenter) TestFinished(Result)           {}
