package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rostan-t/refery/internal/config"
	"github.com/rostan-t/refery/internal/reporting"
	"github.com/rostan-t/refery/internal/runner"
	"github.com/rostan-t/refery/pkg/logging"
)

var (
	runTestFile  string
	runVerbosity runner.Verbosity
	runJUnitFile string
	runSuites    []string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the test suites of a test file",
		Long: `Run every test suite described in a test file and report the outcome
of each test case as it completes.

Each test case runs its binary with the given arguments and standard input,
then compares standard output, standard error and exit code with the expected
values. Expectations left unset are taken from the reference binary of the
test, when it has one.

The command exits with status 1 when a test failed or could not run.

Example usage:
  refery run                               # Run refery.yaml from the current directory
  refery run -f tests.yaml                 # Run another test file
  refery run --verbosity=verbose           # Also show command lines and output of passing tests
  refery run --suite=basics --suite=io     # Run only some suites
  refery run --junit-file=report.xml       # Also write a JUnit XML report`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}

	cmd.Flags().StringVarP(&runTestFile, "test-file", "f", "", "Path to the test file (default: refery.yaml in the current directory)")
	runVerbosity = runner.Normal
	cmd.Flags().Var(&runVerbosity, "verbosity", "Amount of detail printed for each test (silent, normal, verbose)")
	cmd.Flags().StringVar(&runJUnitFile, "junit-file", "", "Write a JUnit XML report to this path")
	cmd.Flags().StringSliceVar(&runSuites, "suite", nil, "Run only the named test suite (repeatable)")

	_ = cmd.RegisterFlagCompletionFunc("verbosity", completeVerbosityFlag)
	_ = cmd.RegisterFlagCompletionFunc("suite", completeSuiteFlag)

	return cmd
}

// completeVerbosityFlag provides shell completion for the verbosity flag
func completeVerbosityFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{runner.Silent.String(), runner.Normal.String(), runner.Verbose.String()}, cobra.ShellCompDirectiveNoFileComp
}

// completeSuiteFlag provides shell completion for the suite flag by loading the test file
func completeSuiteFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	path, err := config.ResolvePath(runTestFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	doc, err := config.Load(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, suite := range doc.TestSuites {
		names = append(names, suite.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func runRun(cmd *cobra.Command, args []string) error {
	// Create context with signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupts: the running test is killed and no further test starts
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logging.Warn("cli", "Received interrupt signal, stopping tests")
			cancel()
		case <-ctx.Done():
		}
	}()

	path, err := config.ResolvePath(runTestFile)
	if err != nil {
		return err
	}
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	suites, err := config.BuildSuites(ctx, doc, config.BuildOptions{
		Verbosity: runVerbosity,
		Suites:    runSuites,
	})
	if err != nil {
		return err
	}
	logging.Debug("cli", "Loaded %d test suites from %s", len(suites), path)

	console := reporting.NewConsole(cmd.OutOrStdout())
	collector := reporting.NewCollector()

	status := 0
	for _, suite := range suites {
		if ctx.Err() != nil {
			break
		}
		status |= suite.Run(ctx, console, collector)
	}
	console.PrintSummary(collector.Summary())

	if runJUnitFile != "" {
		if err := reporting.WriteJUnit(runJUnitFile, collector.Reports()); err != nil {
			return fmt.Errorf("failed to write JUnit report: %w", err)
		}
		logging.Info("cli", "JUnit report written to %s", runJUnitFile)
	}

	if status != 0 || ctx.Err() != nil {
		return errTestsFailed
	}
	return nil
}
