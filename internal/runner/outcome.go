package runner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rostan-t/refery/internal/diff"
)

// Outcome is the final state of a test case run.
type Outcome string

const (
	// Success indicates every declared expectation held
	Success Outcome = "ok"
	// Failure indicates a mismatch or an exceeded timeout
	Failure Outcome = "ko"
	// Error indicates the test environment is broken
	Error Outcome = "error"
	// Skipped indicates the case was never executed
	Skipped Outcome = "skipped"
)

var outcomeStyles = map[Outcome]lipgloss.Style{
	Success: lipgloss.NewStyle().Foreground(diff.Success),
	Failure: lipgloss.NewStyle().Foreground(diff.Error),
	Error:   lipgloss.NewStyle().Foreground(diff.Error).Bold(true),
	Skipped: lipgloss.NewStyle().Foreground(diff.Warning),
}

// Icon returns the glyph shown next to the test name.
func (o Outcome) Icon() string {
	switch o {
	case Success:
		return "✔"
	case Failure:
		return "✘"
	case Error:
		return "‼"
	case Skipped:
		return "⊘"
	default:
		return "?"
	}
}

// Style returns the console style of the outcome.
func (o Outcome) Style() lipgloss.Style {
	if s, ok := outcomeStyles[o]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Failed reports whether the outcome makes its suite fail.
func (o Outcome) Failed() bool {
	return o == Failure || o == Error
}

// ReportMessage is the message attached to the outcome in machine-readable
// reports. It is empty for successful tests.
func (o Outcome) ReportMessage() string {
	switch o {
	case Failure:
		return "Test failed"
	case Error:
		return "Internal error"
	case Skipped:
		return "Test skipped"
	default:
		return ""
	}
}

// Verbosity controls how much of a result reaches the presenter.
type Verbosity int

const (
	// Silent shows the outcome glyph and nothing else.
	Silent Verbosity = iota
	// Normal adds the discrepancies of tests that did not succeed.
	Normal
	// Verbose adds the command line of every test and the output of
	// successful ones.
	Verbose
)

// String makes Verbosity satisfy the fmt.Stringer interface.
func (v Verbosity) String() string {
	switch v {
	case Silent:
		return "silent"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// ParseVerbosity converts a verbosity name into a Verbosity.
func ParseVerbosity(name string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return Silent, nil
	case "normal", "":
		return Normal, nil
	case "verbose":
		return Verbose, nil
	default:
		return Normal, fmt.Errorf("unknown verbosity %q, must be one of: silent, normal, verbose", name)
	}
}

// Set implements pflag.Value.
func (v *Verbosity) Set(name string) error {
	parsed, err := ParseVerbosity(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Verbosity) Type() string {
	return "verbosity"
}
