// Package compare decides whether the observed behavior of a tested program
// matches what a test case expects from it.
package compare

import (
	"fmt"

	"github.com/rostan-t/refery/internal/diff"
)

// Names of the compared channels, as shown in discrepancy titles.
const (
	StdoutName   = "Standard outputs"
	StderrName   = "Standard errors"
	ExitCodeName = "Return codes"
)

// Compare checks actual against expected under mode. A nil expected means the
// channel is not checked and never yields a discrepancy.
func Compare(mode OutputMode, name string, expected *string, actual string) diff.Discrepancy {
	if expected == nil {
		return nil
	}

	switch mode {
	case Strict:
		if *expected == actual {
			return nil
		}
		return diff.TextualDiff{Name: name, Expected: *expected, Actual: actual}
	case Exists:
		if (*expected == "") == (actual == "") {
			return nil
		}
		return diff.ValueDiff{Name: name, Expected: presence(*expected), Actual: presence(actual)}
	default:
		panic(fmt.Sprintf("compare: unhandled output mode %v", mode))
	}
}

// ExitCode checks the exit code of the tested program. A nil expected code
// disables the check.
func ExitCode(expected *int, actual int) diff.Discrepancy {
	if expected == nil || *expected == actual {
		return nil
	}
	return diff.ValueDiff{Name: ExitCodeName, Expected: *expected, Actual: actual}
}

func presence(s string) string {
	if s == "" {
		return "nothing"
	}
	return "something"
}
