package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/rostan-t/refery/internal/diff"
	"github.com/rostan-t/refery/internal/runner"
)

// Console renders suite progress and results for a human reader. It
// implements runner.Presenter.
type Console struct {
	out         io.Writer
	interactive bool
	nameWidth   int
	status      *statusLine
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithInteractive forces the running-test spinner on or off. By default it
// is shown only when the output is a terminal.
func WithInteractive(interactive bool) ConsoleOption {
	return func(c *Console) {
		c.interactive = interactive
	}
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{out: out, interactive: isTerminal(out)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SuiteStarted prints the suite title as a horizontal rule.
func (c *Console) SuiteStarted(name string, tests []string) {
	c.nameWidth = 0
	for _, test := range tests {
		c.nameWidth = max(c.nameWidth, runewidth.StringWidth(test))
	}
	fmt.Fprintln(c.out, titleStyle.Render(rule(name)))
}

// rule renders "━━ name ━━━…" on lineWidth columns.
func rule(name string) string {
	title := "━━ " + name + " "
	fill := lineWidth - runewidth.StringWidth(title)
	if fill < 2 {
		fill = 2
	}
	return title + strings.Repeat("━", fill)
}

// TestStarted shows the running test on interactive terminals.
func (c *Console) TestStarted(name string) {
	if c.interactive {
		c.status = startStatusLine(c.out, name)
	}
}

// TestFinished prints the outcome line of the test followed by what the
// result carries: command line, output and discrepancies.
func (c *Console) TestFinished(result runner.Result) {
	if c.status != nil {
		c.status.stop()
		c.status = nil
	}

	style := result.Outcome.Style()
	name := runewidth.FillRight(result.Name, c.nameWidth)
	fmt.Fprintf(c.out, "%s %s  %s\n",
		style.Render(result.Outcome.Icon()),
		style.Italic(true).Render(name),
		subtleStyle.Render(formatElapsed(result.Elapsed)))

	if result.Command != "" {
		fmt.Fprintln(c.out, commandStyle.Render("$ "+result.Command))
	}
	c.printOutput("stdout", result.Stdout)
	c.printOutput("stderr", result.Stderr)
	for _, d := range result.Discrepancies {
		fmt.Fprintln(c.out, d.Render())
	}
}

func (c *Console) printOutput(channel, text string) {
	if text == "" {
		return
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = diff.Escape(line)
	}
	fmt.Fprintln(c.out, subtleStyle.Render(channel))
	fmt.Fprintln(c.out, outputStyle.Render(strings.Join(lines, "\n")))
}

// PrintSummary prints the totals of a run.
func (c *Console) PrintSummary(s Summary) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, titleStyle.Render(rule("Summary")))

	counts := []string{
		runner.Success.Style().Render(fmt.Sprintf("%s %d passed", runner.Success.Icon(), s.Passed)),
		runner.Failure.Style().Render(fmt.Sprintf("%s %d failed", runner.Failure.Icon(), s.Failed)),
		runner.Error.Style().Render(fmt.Sprintf("%s %d errors", runner.Error.Icon(), s.Errors)),
		runner.Skipped.Style().Render(fmt.Sprintf("%s %d skipped", runner.Skipped.Icon(), s.Skipped)),
	}
	fmt.Fprintf(c.out, "%s  %s\n", strings.Join(counts, "  "),
		subtleStyle.Render(fmt.Sprintf("%d tests in %d suites, %s", s.Total, s.Suites, formatElapsed(s.Elapsed))))

	if s.Succeeded() {
		fmt.Fprintln(c.out, passedStyle.Render("All tests passed!"))
	} else {
		fmt.Fprintln(c.out, failedStyle.Render("Some tests failed"))
	}
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
