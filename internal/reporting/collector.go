package reporting

import "github.com/rostan-t/refery/internal/runner"

// Collector keeps the reports of every suite in the order they ran. It
// implements runner.ReportSink.
type Collector struct {
	reports []runner.SuiteReport
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// AddSuite implements runner.ReportSink.
func (c *Collector) AddSuite(report runner.SuiteReport) {
	c.reports = append(c.reports, report)
}

// Reports returns the collected reports.
func (c *Collector) Reports() []runner.SuiteReport {
	return c.reports
}

// Summary summarizes the collected reports.
func (c *Collector) Summary() Summary {
	return Summarize(c.reports)
}
