// Package tests provides the reference test system for polyroot.
//
// A reference suite is a directory of JSON cases, each holding polynomial
// coefficients and the roots the solver is expected to produce.
package tests

import (
	"time"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// TestCase represents a single test case loaded from JSON.
type TestCase struct {
	Name         string               // Test name (from filename)
	Suite        string               // Test suite name (parent directory)
	Path         string               // Full path to the test file
	Description  string               // Optional free-form description
	Coefficients []float64            // Highest degree first
	Expected     []complexnum.Complex // Expected roots, in any order
	Tolerance    *float64             // Per-case tolerance value override
}

// TestResult represents the result of running a test case.
type TestResult struct {
	TestCase *TestCase
	Passed   bool
	Actual   []complexnum.Complex
	Diff     string
	Error    error
	Duration time.Duration
}

// TestSuiteResult represents results for an entire test suite.
type TestSuiteResult struct {
	Suite   string
	Results []TestResult
	Passed  int
	Failed  int
}

// Summary aggregates the results of every suite in a run.
type Summary struct {
	Suites   []TestSuiteResult // Sorted by suite name
	Passed   int
	Failed   int
	Duration time.Duration
}

// Total returns the number of executed cases.
func (s *Summary) Total() int {
	return s.Passed + s.Failed
}

// Success reports whether every case passed.
func (s *Summary) Success() bool {
	return s.Failed == 0
}
