package config

import (
	"context"
	"fmt"
	"slices"

	"github.com/rostan-t/refery/internal/compare"
	"github.com/rostan-t/refery/internal/runner"
	"github.com/rostan-t/refery/pkg/logging"
)

// BuildOptions tunes how suites are built from a document.
type BuildOptions struct {
	// Verbosity is applied to every suite
	Verbosity runner.Verbosity
	// Suites restricts the build to the named suites; empty keeps them all
	Suites []string
}

// BuildSuites turns the document into runnable suites. Reference binaries
// are resolved here, once per test; a failed resolution is logged and the
// affected test will report an error when run.
func BuildSuites(ctx context.Context, doc *Document, opts BuildOptions) ([]*runner.TestSuite, error) {
	definitions := doc.Suites()

	for _, name := range opts.Suites {
		if !slices.ContainsFunc(definitions, func(s SuiteDefinition) bool { return s.Name == name }) {
			return nil, fmt.Errorf("unknown test suite %q", name)
		}
	}

	var suites []*runner.TestSuite
	for _, def := range definitions {
		if len(opts.Suites) > 0 && !slices.Contains(opts.Suites, def.Name) {
			continue
		}

		suite := &runner.TestSuite{
			Name:      def.Name,
			Setup:     def.Setup,
			Teardown:  def.Teardown,
			Fatal:     def.Fatal,
			Verbosity: opts.Verbosity,
			Tests:     make([]*runner.TestCase, 0, len(def.Tests)),
		}
		for _, test := range def.Tests {
			tc := newTestCase(test)
			if err := tc.ResolveReference(ctx); err != nil {
				logging.Error("config", err, "Cannot resolve expectations of %s.%s from its reference", def.Name, tc.Name)
			}
			suite.Tests = append(suite.Tests, tc)
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

func newTestCase(def TestDefinition) *runner.TestCase {
	tc := &runner.TestCase{
		Name:       def.GetName(),
		Stdin:      def.Stdin,
		Stdout:     def.Stdout,
		Stderr:     def.Stderr,
		ExitCode:   def.ExitCode,
		StdoutMode: compare.Strict,
		StderrMode: compare.Strict,
		Skipped:    def.IsSkipped(),
	}
	if def.Binary != nil {
		tc.Binary = *def.Binary
	}
	if def.Args != nil {
		tc.Args = slices.Clone(*def.Args)
	}
	if def.Ref != nil {
		tc.Ref = *def.Ref
	}
	if def.StdoutMode != nil {
		tc.StdoutMode = *def.StdoutMode
	}
	if def.StderrMode != nil {
		tc.StderrMode = *def.StderrMode
	}
	if def.Timeout != nil {
		// Documents are validated before they are built
		tc.Timeout, _ = timeoutDuration(*def.Timeout)
	}
	return tc
}
