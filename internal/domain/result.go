package domain

import (
	"time"

	"github.com/testvibe/testvibe/pkg/asserts"
)

// CaseResult represents the outcome of one test case invocation
type CaseResult struct {
	Name     string        // Test case (method) name
	Passed   bool          // Whether the test case completed without failure
	Err      error         // Failure or invocation error
	Duration time.Duration // Time taken to execute
}

// SuiteResult represents one suite instance run from a run-list entry
type SuiteResult struct {
	Group      string           // Group of the run-list
	Identifier string           // Run-list entry the suite was resolved from
	Suite      string           // Suite type name
	Cases      []CaseResult     // Cases that were invoked, in invocation order
	Skipped    int              // Cases not invoked after a failure stopped the suite
	Counters   asserts.Counters // Assertion tally of the suite instance
	Err        error            // First failure, nil if every case passed
	Duration   time.Duration
}

// Failed reports whether the suite stopped on a failure
func (r SuiteResult) Failed() bool {
	return r.Err != nil
}

// RunSummary aggregates all suite results of a run
type RunSummary struct {
	Suites   []SuiteResult
	Duration time.Duration
	Aborted  bool // The batch stopped before every run-list entry was executed
}

// Stats are the totals shown after a run
type Stats struct {
	Suites       int
	FailedSuites int
	Cases        int
	FailedCases  int
	SkippedCases int
	Passed       int // Successful assertions
	Asserted     int // Attempted assertions
}

// Stats computes the totals of the summary
func (s RunSummary) Stats() Stats {
	var st Stats
	for _, r := range s.Suites {
		st.Suites++
		if r.Failed() {
			st.FailedSuites++
		}
		st.SkippedCases += r.Skipped
		for _, c := range r.Cases {
			st.Cases++
			if !c.Passed {
				st.FailedCases++
			}
		}
		st.Passed += r.Counters.Passed
		st.Asserted += r.Counters.Asserted
	}
	return st
}

// Failures returns one record per failed test case
func (s RunSummary) Failures() []TestFailure {
	var failures []TestFailure
	for _, r := range s.Suites {
		for _, c := range r.Cases {
			if c.Passed {
				continue
			}
			failures = append(failures, NewTestFailure(r, c))
		}
	}
	return failures
}
