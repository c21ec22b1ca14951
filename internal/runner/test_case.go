package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"mvdan.cc/sh/v3/syntax"

	"github.com/rostan-t/refery/internal/compare"
	"github.com/rostan-t/refery/internal/diff"
	"github.com/rostan-t/refery/pkg/logging"
)

// TestCase is one invocation of a program under test and what it is
// expected to do. Unset expectations are not checked.
type TestCase struct {
	Name   string
	Binary string
	Args   []string
	// Stdin is written to the process when set
	Stdin *string

	Stdout     *string
	Stderr     *string
	ExitCode   *int
	StdoutMode compare.OutputMode
	StderrMode compare.OutputMode

	Skipped bool
	// Timeout bounds the run when positive
	Timeout time.Duration
	// Ref is a reference binary filling unset expectations
	Ref string

	resolved  bool
	refErr    error
	refReason diff.Discrepancy
}

// ResolveReference runs the reference binary once and fills every unset
// expectation from what it printed and returned. It does nothing for cases
// without a reference or skipped cases, and only the first call has any
// effect. A failed resolution is returned and also remembered: every later
// Run of the case ends in Error without spawning the binary under test.
func (tc *TestCase) ResolveReference(ctx context.Context) error {
	if tc.Ref == "" || tc.Skipped || tc.resolved {
		return tc.refErr
	}
	tc.resolved = true

	if tc.Stdout != nil && tc.Stderr != nil && tc.ExitCode != nil {
		return nil
	}

	logging.Debug("runner", "Resolving expectations of %s from reference %s", tc.Name, tc.Ref)
	out, err := runProcess(ctx, tc.Ref, tc.Args, tc.Stdin, tc.Timeout)
	if err != nil {
		tc.refErr = fmt.Errorf("reference binary %s of test %s: %w", tc.Ref, tc.Name, err)
		if errors.Is(err, ErrTimeout) {
			tc.refReason = diff.NewMessage("Reference %s timeout exceeded.", tc.Ref)
		} else {
			tc.refReason = failureReason(tc.Ref, err)
		}
		return tc.refErr
	}

	if tc.Stdout == nil {
		tc.Stdout = &out.stdout
	}
	if tc.Stderr == nil {
		tc.Stderr = &out.stderr
	}
	if tc.ExitCode == nil {
		code := out.exitCode
		tc.ExitCode = &code
	}
	return nil
}

// CommandLine returns the invocation as it could be typed in a shell.
func (tc *TestCase) CommandLine() string {
	words := make([]string, 0, len(tc.Args)+1)
	for _, word := range append([]string{tc.Binary}, tc.Args...) {
		quoted, err := syntax.Quote(word, syntax.LangBash)
		if err != nil {
			quoted = strconv.Quote(word)
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " ")
}

// Run executes the test case once and compares what the process did with
// the declared expectations. Elapsed is left to the caller.
func (tc *TestCase) Run(ctx context.Context) Result {
	result := Result{Name: tc.Name, Command: tc.CommandLine()}

	if tc.Skipped {
		result.Outcome = Skipped
		return result
	}
	if tc.refReason != nil {
		result.Outcome = Error
		result.Discrepancies = []diff.Discrepancy{tc.refReason}
		return result
	}

	out, err := runProcess(ctx, tc.Binary, tc.Args, tc.Stdin, tc.Timeout)
	result.Stdout = out.stdout
	result.Stderr = out.stderr
	switch {
	case err == nil:
	case errors.Is(err, ErrTimeout):
		logging.Debug("runner", "Test %s exceeded its %s timeout", tc.Name, tc.Timeout)
		result.Outcome = Failure
		result.Discrepancies = []diff.Discrepancy{
			diff.NewMessage("%s timeout exceeded.", formatSeconds(tc.Timeout)+"s"),
		}
		return result
	default:
		logging.Debug("runner", "Test %s could not run: %v", tc.Name, err)
		result.Outcome = Error
		result.Discrepancies = []diff.Discrepancy{failureReason(tc.Binary, err)}
		return result
	}

	checks := []diff.Discrepancy{
		compare.Compare(tc.StdoutMode, compare.StdoutName, tc.Stdout, out.stdout),
		compare.Compare(tc.StderrMode, compare.StderrName, tc.Stderr, out.stderr),
		compare.ExitCode(tc.ExitCode, out.exitCode),
	}
	for _, d := range checks {
		if d != nil {
			result.Discrepancies = append(result.Discrepancies, d)
		}
	}

	result.Outcome = Success
	if len(result.Discrepancies) > 0 {
		result.Outcome = Failure
	}
	return result
}

// failureReason explains why binary could not be run to completion.
func failureReason(binary string, err error) diff.Discrepancy {
	switch {
	case errors.Is(err, ErrInterrupted):
		return diff.NewMessage("Run %s before completion.", "interrupted")
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		return diff.NewMessage("No such file or directory: %s", binary)
	default:
		var spawnErr *SpawnError
		if errors.As(err, &spawnErr) {
			err = spawnErr.Err
		}
		return diff.NewMessage("Cannot execute %s: "+strings.ReplaceAll(err.Error(), "%", "%%"), binary)
	}
}

// formatSeconds renders d in seconds without trailing zeros.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
