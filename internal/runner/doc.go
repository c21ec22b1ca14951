// Package runner is the execution and assertion engine of refery.
//
// A TestCase describes one invocation of a program under test together with
// what it is expected to print and return. Running it spawns the program,
// feeds its standard input, waits for it within an optional timeout and
// compares standard output, standard error and exit code with the declared
// expectations.
//
// # Outcomes
//
// Every run ends with exactly one Outcome:
//
//   - Success: every declared expectation holds.
//   - Failure: at least one expectation does not hold, or the timeout expired.
//   - Error: the test could not be carried out, because the binary or the
//     reference binary is missing.
//   - Skipped: the case is disabled and nothing was spawned.
//
// # Reference binaries
//
// A case may name a reference binary in Ref. ResolveReference runs it once
// with the same arguments and input, and fills every expectation that was
// left unset. Explicit expectations always win. Resolution is an explicit
// step so that building a TestCase never spawns anything.
//
// # Suites
//
// A TestSuite runs its cases one after another, in declaration order, with
// optional setup and teardown commands around each of them. Results are
// forwarded to a Presenter, filtered by the suite Verbosity, and collected
// into a SuiteReport handed to a ReportSink once the suite is over. A fatal
// suite stops at the first case that fails or errors.
package runner
