package config

import (
	"github.com/rostan-t/refery/internal/compare"
)

// Document is the content of a refery test file.
type Document struct {
	// Default holds the fields applied to every test that does not set them
	Default TestDefinition `yaml:"default,omitempty"`
	// TestSuites lists the suites in execution order
	TestSuites []SuiteDefinition `yaml:"testsuites"`
}

// SuiteDefinition describes one test suite.
type SuiteDefinition struct {
	Name string `yaml:"name"`
	// Setup and Teardown are command lines run around every test
	Setup    string           `yaml:"setup,omitempty"`
	Teardown string           `yaml:"teardown,omitempty"`
	Fatal    bool             `yaml:"fatal,omitempty"`
	Tests    []TestDefinition `yaml:"tests"`
}

// TestDefinition describes one test case. Every field is optional so that a
// test can be completed by the document defaults; a field is considered set
// when it is present in the document, even with an empty value.
type TestDefinition struct {
	Name       *string             `yaml:"name,omitempty"`
	Binary     *string             `yaml:"binary,omitempty"`
	Args       *[]string           `yaml:"args,omitempty"`
	Ref        *string             `yaml:"ref,omitempty"`
	Stdin      *string             `yaml:"stdin,omitempty"`
	Stdout     *string             `yaml:"stdout,omitempty"`
	Stderr     *string             `yaml:"stderr,omitempty"`
	ExitCode   *int                `yaml:"exit_code,omitempty"`
	StdoutMode *compare.OutputMode `yaml:"stdout_mode,omitempty"`
	StderrMode *compare.OutputMode `yaml:"stderr_mode,omitempty"`
	Skipped    *bool               `yaml:"skipped,omitempty"`
	// Timeout is expressed in seconds
	Timeout *float64 `yaml:"timeout,omitempty"`
}

// GetName returns the test name, or an empty string when unset.
func (t TestDefinition) GetName() string {
	if t.Name == nil {
		return ""
	}
	return *t.Name
}

// IsSkipped reports whether the test is marked as skipped.
func (t TestDefinition) IsSkipped() bool {
	return t.Skipped != nil && *t.Skipped
}
