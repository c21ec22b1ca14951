//go:build unix

package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostan-t/refery/internal/diff"
)

// newABCSuite builds the cases A (success), B (failure) and C (success).
// C leaves a marker file behind when it runs.
func newABCSuite(t *testing.T, fatal bool) (*TestSuite, string) {
	t.Helper()
	marker := filepath.Join(t.TempDir(), "c-ran")
	return &TestSuite{
		Name:      "abc",
		Fatal:     fatal,
		Verbosity: Normal,
		Tests: []*TestCase{
			{Name: "A", Binary: "echo", Args: []string{"a"}, Stdout: ptr("a\n")},
			{Name: "B", Binary: "echo", Args: []string{"b"}, Stdout: ptr("x\n")},
			{Name: "C", Binary: "touch", Args: []string{marker}, ExitCode: ptr(0)},
		},
	}, marker
}

func TestTestSuite_Run_NonFatal(t *testing.T) {
	suite, marker := newABCSuite(t, false)
	presenter := &recordingPresenter{}
	sink := &recordingSink{}

	status := suite.Run(context.Background(), presenter, sink)

	assert.Equal(t, 1, status)
	assert.FileExists(t, marker)
	assert.Equal(t, []string{"abc"}, presenter.suites)
	assert.Equal(t, []string{"A", "B", "C"}, presenter.started)
	require.Len(t, presenter.results, 3)
	assert.Equal(t, []Outcome{Success, Failure, Success},
		[]Outcome{presenter.results[0].Outcome, presenter.results[1].Outcome, presenter.results[2].Outcome})

	require.Len(t, sink.reports, 1)
	report := sink.reports[0]
	assert.Equal(t, "abc", report.Name)
	require.Len(t, report.Records, 3)

	b := report.Records[1]
	assert.Equal(t, "B", b.Name)
	assert.Equal(t, "abc.B", b.Classname)
	assert.Equal(t, Failure, b.Outcome)
	assert.Equal(t, "Test failed", b.Message)
	assert.Contains(t, b.Details, "Standard outputs differ")
	assert.Contains(t, b.Details, "-b\n+x")
	assert.Equal(t, "b\n", b.Stdout)
	assert.Positive(t, b.Elapsed)

	assert.Empty(t, report.Records[0].Message)
}

func TestTestSuite_Run_Fatal(t *testing.T) {
	suite, marker := newABCSuite(t, true)
	presenter := &recordingPresenter{}
	sink := &recordingSink{}

	status := suite.Run(context.Background(), presenter, sink)

	assert.Equal(t, 1, status)
	assert.NoFileExists(t, marker)
	assert.Equal(t, []string{"A", "B"}, presenter.started)
	require.Len(t, sink.reports, 1)
	assert.Len(t, sink.reports[0].Records, 2)
}

func TestTestSuite_Run_AllPassing(t *testing.T) {
	suite := &TestSuite{
		Name: "green",
		Tests: []*TestCase{
			{Name: "echo", Binary: "echo", Args: []string{"ok"}, Stdout: ptr("ok\n")},
			{Name: "disabled", Binary: "./does-not-exist", Skipped: true},
		},
	}
	sink := &recordingSink{}

	assert.Equal(t, 0, suite.Run(context.Background(), nil, sink))
	require.Len(t, sink.reports, 1)
	require.Len(t, sink.reports[0].Records, 2)
	assert.Equal(t, Skipped, sink.reports[0].Records[1].Outcome)
	assert.Equal(t, "Test skipped", sink.reports[0].Records[1].Message)
}

func TestTestSuite_Run_ErrorFailsSuite(t *testing.T) {
	suite := &TestSuite{
		Name:  "broken",
		Fatal: true,
		Tests: []*TestCase{
			{Name: "missing", Binary: "./does-not-exist"},
			{Name: "never", Binary: "echo"},
		},
	}
	sink := &recordingSink{}

	assert.Equal(t, 1, suite.Run(context.Background(), nil, sink))
	require.Len(t, sink.reports[0].Records, 1)
	assert.Equal(t, "Internal error", sink.reports[0].Records[0].Message)
}

func TestTestSuite_Run_HooksAroundEveryCase(t *testing.T) {
	log := filepath.Join(t.TempDir(), "hooks.log")
	t.Setenv("REFERY_HOOK_LOG", log)
	suite := &TestSuite{
		Name:     "hooks",
		Setup:    `sh -c 'echo setup >> "$REFERY_HOOK_LOG"'`,
		Teardown: `sh -c 'echo teardown >> "$REFERY_HOOK_LOG"'`,
		Tests: []*TestCase{
			{Name: "skipped", Binary: "echo", Skipped: true},
			{Name: "runs", Binary: "sh", Args: []string{"-c", `echo test >> "$REFERY_HOOK_LOG"`}},
		},
	}

	assert.Equal(t, 0, suite.Run(context.Background(), nil, nil))

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Equal(t, "setup\nteardown\nsetup\ntest\nteardown\n", string(data))
}

func TestTestSuite_Run_FailingHooksAreIgnored(t *testing.T) {
	suite := &TestSuite{
		Name:     "bad hooks",
		Setup:    "false",
		Teardown: "./no-such-teardown 'unterminated",
		Tests: []*TestCase{
			{Name: "echo", Binary: "echo", Args: []string{"ok"}, Stdout: ptr("ok\n")},
		},
	}

	assert.Equal(t, 0, suite.Run(context.Background(), nil, nil))
}

func TestTestSuite_Run_Cancelled(t *testing.T) {
	suite, marker := newABCSuite(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := &recordingSink{}

	assert.Equal(t, 0, suite.Run(ctx, nil, sink))
	assert.NoFileExists(t, marker)
	require.Len(t, sink.reports, 1)
	assert.Empty(t, sink.reports[0].Records)
}

func TestTestSuite_Filter(t *testing.T) {
	failure := Result{
		Name:          "f",
		Outcome:       Failure,
		Command:       "echo hi",
		Stdout:        "hi\n",
		Discrepancies: []diff.Discrepancy{diff.NewMessage("%s", "x")},
	}
	success := Result{Name: "s", Outcome: Success, Command: "echo ok", Stdout: "ok\n", Stderr: "warn\n"}

	silent := (&TestSuite{Verbosity: Silent}).filter(failure)
	assert.Equal(t, Result{Name: "f", Outcome: Failure}, silent)

	normal := (&TestSuite{Verbosity: Normal}).filter(failure)
	assert.Equal(t, failure.Discrepancies, normal.Discrepancies)
	assert.Empty(t, normal.Command)
	assert.Empty(t, normal.Stdout)
	assert.Equal(t, Result{Name: "s", Outcome: Success}, (&TestSuite{Verbosity: Normal}).filter(success))

	verbose := (&TestSuite{Verbosity: Verbose}).filter(failure)
	assert.Equal(t, "echo hi", verbose.Command)
	assert.Equal(t, failure.Discrepancies, verbose.Discrepancies)
	assert.Empty(t, verbose.Stdout)
	assert.Equal(t, success, (&TestSuite{Verbosity: Verbose}).filter(success))
}
