package reporting

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jstemmer/go-junit-report/v2/junit"

	"github.com/rostan-t/refery/internal/runner"
)

// JUnit converts suite reports into JUnit test suites. Every test is
// identified by its qualified suite.test class name.
func JUnit(reports []runner.SuiteReport) junit.Testsuites {
	var suites junit.Testsuites
	var total time.Duration
	for i, report := range reports {
		suite := junit.Testsuite{
			Name: report.Name,
			ID:   i,
			Time: formatSeconds(report.Elapsed),
		}
		if !report.Timestamp.IsZero() {
			suite.SetTimestamp(report.Timestamp)
		}
		for _, record := range report.Records {
			suite.AddTestcase(testcase(record))
		}
		suites.AddSuite(suite)
		total += report.Elapsed
	}
	suites.Time = formatSeconds(total)
	return suites
}

func testcase(record runner.Record) junit.Testcase {
	tc := junit.Testcase{
		Name:      record.Name,
		Classname: record.Classname,
		Time:      formatSeconds(record.Elapsed),
	}

	result := &junit.Result{Message: record.Message, Data: xmlSafe(record.Details)}
	switch record.Outcome {
	case runner.Failure:
		tc.Failure = result
	case runner.Error:
		tc.Error = result
	case runner.Skipped:
		tc.Skipped = result
	}

	if record.Stdout != "" {
		tc.SystemOut = &junit.Output{Data: xmlSafe(record.Stdout)}
	}
	if record.Stderr != "" {
		tc.SystemErr = &junit.Output{Data: xmlSafe(record.Stderr)}
	}
	return tc
}

// WriteJUnit writes the reports as a JUnit XML file at path.
func WriteJUnit(path string, reports []runner.SuiteReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JUnit report: %w", err)
	}

	suites := JUnit(reports)
	if err := suites.WriteXML(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write JUnit report: %w", err)
	}
	return f.Close()
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

// xmlSafe replaces the characters XML documents cannot hold.
func xmlSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return '\uFFFD'
		case r >= 0xD800 && r <= 0xDFFF:
			return '\uFFFD'
		default:
			return r
		}
	}, s)
}
