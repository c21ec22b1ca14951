//go:build unix

package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// writeScript creates an executable shell script in dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

type recordingPresenter struct {
	suites  []string
	started []string
	results []Result
}

func (p *recordingPresenter) SuiteStarted(name string, tests []string) {
	p.suites = append(p.suites, name)
}

func (p *recordingPresenter) TestStarted(name string) {
	p.started = append(p.started, name)
}

func (p *recordingPresenter) TestFinished(result Result) {
	p.results = append(p.results, result)
}

type recordingSink struct {
	reports []SuiteReport
}

func (s *recordingSink) AddSuite(report SuiteReport) {
	s.reports = append(s.reports, report)
}
