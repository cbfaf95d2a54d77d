package tests

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
	"github.com/AndreyAkinshin/polyroot/pkg/solver"
)

// Runner executes reference cases against the solver.
type Runner struct {
	tol         complexnum.Tolerance
	parallelism int
	logger      *zap.Logger
}

// NewRunner creates a Runner. parallelism below 1 runs cases one at a time;
// a nil logger discards diagnostics.
func NewRunner(tol complexnum.Tolerance, parallelism int, logger *zap.Logger) *Runner {
	if parallelism < 1 {
		parallelism = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{tol: tol, parallelism: parallelism, logger: logger}
}

// RunCase solves one case and compares the roots with its expectation.
func (r *Runner) RunCase(tc *TestCase) TestResult {
	start := time.Now()
	result := TestResult{TestCase: tc}

	tol := r.tol
	if tc.Tolerance != nil {
		tol.Value = *tc.Tolerance
	}

	roots, err := solver.New(tol).Solve(tc.Coefficients...)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err
		result.Diff = err.Error()
		return result
	}

	result.Actual = roots
	result.Passed, result.Diff = CompareRoots(tc.Expected, roots, tol)
	return result
}

// Run executes every case of every suite concurrently and aggregates the
// results. Cancelling ctx stops scheduling further cases and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, suites map[string][]TestCase) (*Summary, error) {
	start := time.Now()

	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([][]TestResult, len(names))
	for i, name := range names {
		results[i] = make([]TestResult, len(suites[name]))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, name := range names {
		cases := suites[name]
		for j := range cases {
			i, j, tc := i, j, &cases[j]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res := r.RunCase(tc)
				r.logger.Debug("case finished",
					zap.String("suite", tc.Suite),
					zap.String("case", tc.Name),
					zap.Bool("passed", res.Passed),
					zap.Duration("duration", res.Duration),
				)
				results[i][j] = res
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reference run interrupted: %w", err)
	}

	summary := &Summary{Suites: make([]TestSuiteResult, len(names))}
	for i, name := range names {
		sr := TestSuiteResult{Suite: name, Results: results[i]}
		for _, res := range results[i] {
			if res.Passed {
				sr.Passed++
			} else {
				sr.Failed++
			}
		}
		summary.Suites[i] = sr
		summary.Passed += sr.Passed
		summary.Failed += sr.Failed
	}
	summary.Duration = time.Since(start)

	r.logger.Debug("reference run finished",
		zap.Int("suites", len(names)),
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}
