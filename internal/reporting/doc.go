// Package reporting renders test results.
//
// Console is the presenter used on the command line: it prints one line per
// test and the discrepancy panels of the tests that did not succeed.
// Collector gathers suite reports so they can be summarized and written as
// a JUnit XML file.
package reporting
