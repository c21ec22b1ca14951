package reporting

import (
	"time"

	"github.com/rostan-t/refery/internal/runner"
)

// Summary counts the outcomes of a run.
type Summary struct {
	Suites  int           `json:"suites"`
	Total   int           `json:"total"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Errors  int           `json:"errors"`
	Skipped int           `json:"skipped"`
	Elapsed time.Duration `json:"-"`
}

// Summarize counts the records of every report.
func Summarize(reports []runner.SuiteReport) Summary {
	s := Summary{Suites: len(reports)}
	for _, report := range reports {
		s.Elapsed += report.Elapsed
		for _, record := range report.Records {
			s.Total++
			switch record.Outcome {
			case runner.Success:
				s.Passed++
			case runner.Failure:
				s.Failed++
			case runner.Error:
				s.Errors++
			case runner.Skipped:
				s.Skipped++
			}
		}
	}
	return s
}

// Succeeded reports whether no test failed or errored.
func (s Summary) Succeeded() bool {
	return s.Failed == 0 && s.Errors == 0
}
