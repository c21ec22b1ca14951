package config

// withDefaults returns test completed field by field with the values of
// defaults. Fields set in test always win, including empty ones.
func withDefaults(test, defaults TestDefinition) TestDefinition {
	merged := test
	if merged.Name == nil {
		merged.Name = defaults.Name
	}
	if merged.Binary == nil {
		merged.Binary = defaults.Binary
	}
	if merged.Args == nil {
		merged.Args = defaults.Args
	}
	if merged.Ref == nil {
		merged.Ref = defaults.Ref
	}
	if merged.Stdin == nil {
		merged.Stdin = defaults.Stdin
	}
	if merged.Stdout == nil {
		merged.Stdout = defaults.Stdout
	}
	if merged.Stderr == nil {
		merged.Stderr = defaults.Stderr
	}
	if merged.ExitCode == nil {
		merged.ExitCode = defaults.ExitCode
	}
	if merged.StdoutMode == nil {
		merged.StdoutMode = defaults.StdoutMode
	}
	if merged.StderrMode == nil {
		merged.StderrMode = defaults.StderrMode
	}
	if merged.Skipped == nil {
		merged.Skipped = defaults.Skipped
	}
	if merged.Timeout == nil {
		merged.Timeout = defaults.Timeout
	}
	return merged
}

// Suites returns the suites of the document with the defaults applied to
// every test.
func (d *Document) Suites() []SuiteDefinition {
	suites := make([]SuiteDefinition, 0, len(d.TestSuites))
	for _, suite := range d.TestSuites {
		merged := suite
		merged.Tests = make([]TestDefinition, 0, len(suite.Tests))
		for _, test := range suite.Tests {
			merged.Tests = append(merged.Tests, withDefaults(test, d.Default))
		}
		suites = append(suites, merged)
	}
	return suites
}
