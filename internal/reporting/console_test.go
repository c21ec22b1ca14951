package reporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rostan-t/refery/internal/diff"
	"github.com/rostan-t/refery/internal/runner"
)

func TestConsole_SuiteStarted(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.SuiteStarted("basics", []string{"a", "a longer name"})

	assert.True(t, strings.HasPrefix(buf.String(), "━━ basics ━"))
	assert.Equal(t, len("a longer name"), c.nameWidth)
}

func TestConsole_TestFinished(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, WithInteractive(false))
	c.SuiteStarted("basics", []string{"hello", "bye"})

	c.TestStarted("hello")
	c.TestFinished(runner.Result{
		Name:    "hello",
		Outcome: runner.Success,
		Command: "echo hello",
		Stdout:  "hello\n",
		Elapsed: 12 * time.Millisecond,
	})
	c.TestFinished(runner.Result{
		Name:          "bye",
		Outcome:       runner.Failure,
		Discrepancies: []diff.Discrepancy{diff.TextualDiff{Name: "Standard outputs", Expected: "bye\n", Actual: "hi\n"}},
	})

	out := buf.String()
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "0.012s")
	assert.Contains(t, out, "$ echo hello")
	assert.Contains(t, out, "stdout")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "Standard outputs differ")
	assert.NotContains(t, out, "Running")
}

func TestConsole_OutputIsEscaped(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.TestFinished(runner.Result{Name: "colors", Outcome: runner.Success, Stdout: "\x1b[31mred\n"})

	assert.NotContains(t, buf.String(), "\x1b[31m")
	assert.Contains(t, buf.String(), `\x1b[31mred`)
}

func TestConsole_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PrintSummary(Summary{Suites: 1, Total: 3, Passed: 3})
	assert.Contains(t, buf.String(), "3 passed")
	assert.Contains(t, buf.String(), "All tests passed!")

	buf.Reset()
	c.PrintSummary(Summary{Suites: 2, Total: 3, Passed: 1, Failed: 1, Errors: 1})
	assert.Contains(t, buf.String(), "1 failed")
	assert.Contains(t, buf.String(), "1 errors")
	assert.Contains(t, buf.String(), "3 tests in 2 suites")
	assert.Contains(t, buf.String(), "Some tests failed")
}

func TestStatusModel(t *testing.T) {
	m := newStatusModel("hello")
	assert.Contains(t, m.View(), "Running hello")
	assert.NotNil(t, m.Init())

	updated, cmd := m.Update(statusDoneMsg{})
	assert.NotNil(t, cmd)
	assert.Empty(t, updated.View())
}
