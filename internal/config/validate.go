package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ValidationError reports an invalid suite or test definition.
type ValidationError struct {
	Suite  string
	Test   string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Test != "":
		return fmt.Sprintf("suite %q, test %q: %s", e.Suite, e.Test, e.Reason)
	case e.Suite != "":
		return fmt.Sprintf("suite %q: %s", e.Suite, e.Reason)
	default:
		return e.Reason
	}
}

// Validate checks the document once defaults are applied. Every problem is
// reported, joined in a single error.
func (d *Document) Validate() error {
	if len(d.TestSuites) == 0 {
		return &ValidationError{Reason: "no test suites defined"}
	}

	var errs []error
	for i, suite := range d.Suites() {
		suiteName := suite.Name
		if suiteName == "" {
			suiteName = fmt.Sprintf("#%d", i+1)
			errs = append(errs, &ValidationError{Suite: suiteName, Reason: "name is required"})
		}

		seen := make(map[string]bool, len(suite.Tests))
		for j, test := range suite.Tests {
			testName := test.GetName()
			if testName == "" {
				testName = fmt.Sprintf("#%d", j+1)
				errs = append(errs, &ValidationError{Suite: suiteName, Test: testName, Reason: "name is required"})
			} else if seen[testName] {
				errs = append(errs, &ValidationError{Suite: suiteName, Test: testName, Reason: "duplicate test name"})
			}
			seen[testName] = true

			if test.Binary == nil || *test.Binary == "" {
				errs = append(errs, &ValidationError{Suite: suiteName, Test: testName, Reason: "binary is required"})
			}
			if test.Timeout != nil {
				if _, err := timeoutDuration(*test.Timeout); err != nil {
					errs = append(errs, &ValidationError{Suite: suiteName, Test: testName, Reason: err.Error()})
				}
			}
		}
	}
	return errors.Join(errs...)
}

// maxTimeoutSeconds is the longest timeout a time.Duration can hold.
const maxTimeoutSeconds = float64(math.MaxInt64 / int64(time.Second))

// timeoutDuration converts a timeout in seconds into a Duration. Values that
// would not arm a timer, such as sub-nanosecond or infinite ones, are errors.
func timeoutDuration(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, errors.New("timeout must be a finite number of seconds")
	}
	if seconds > maxTimeoutSeconds {
		return 0, fmt.Errorf("timeout must not exceed %.0f seconds", maxTimeoutSeconds)
	}
	d := time.Duration(seconds * float64(time.Second))
	if d <= 0 {
		return 0, errors.New("timeout must be positive")
	}
	return d, nil
}
