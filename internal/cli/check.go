package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/polyroot/internal/errors"
	"github.com/AndreyAkinshin/polyroot/internal/output"
	"github.com/AndreyAkinshin/polyroot/internal/tests"
)

// checkOptions holds flags specific to the check command.
type checkOptions struct {
	Dir     string
	Pattern string
	Jobs    int
}

func parseCheckArgs(args []string) (*checkOptions, error) {
	opts := &checkOptions{}
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--pattern="):
			opts.Pattern = strings.TrimPrefix(arg, "--pattern=")
			if opts.Pattern == "" {
				return nil, errors.Usage("check: --pattern requires a value (--pattern=<glob>)")
			}
		case strings.HasPrefix(arg, "--jobs="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--jobs="))
			if err != nil || n < 1 {
				return nil, errors.Usagef("check: invalid --jobs value %q: must be a positive integer", strings.TrimPrefix(arg, "--jobs="))
			}
			opts.Jobs = n
		case arg == "--pattern" || arg == "--jobs":
			return nil, errors.Usagef("check: %s requires a value (%s=<value>)", arg, arg)
		case strings.HasPrefix(arg, "-"):
			return nil, errors.Usagef("check: unknown flag: %s", arg)
		default:
			if opts.Dir != "" {
				return nil, errors.Usagef("check: unexpected argument: %s", arg)
			}
			opts.Dir = arg
		}
	}
	return opts, nil
}

// cmdCheck runs the reference test suites.
func (a *app) cmdCheck(args []string) error {
	copts, err := parseCheckArgs(args)
	if err != nil {
		return err
	}

	s, err := a.loadSettings()
	if err != nil {
		return err
	}
	cfg := s.Config

	dir := copts.Dir
	if dir == "" {
		dir = cfg.Tests.Directory
		// Directories named in a config file are relative to that file.
		if s.Path != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(s.Path), dir)
		}
	}
	pattern := copts.Pattern
	if pattern == "" {
		pattern = cfg.Tests.Pattern
	}
	jobs := copts.Jobs
	if jobs == 0 {
		jobs = cfg.Tests.Parallelism
	}

	a.logger.Debug("loading reference suites", zap.String("dir", dir), zap.String("pattern", pattern))
	suites, err := tests.LoadAllSuites(dir, pattern)
	if err != nil {
		return errors.Wrap(err, "failed to load reference suites")
	}
	if len(suites) == 0 {
		return errors.NotFound("reference cases", filepath.Join(dir, "<suite>", pattern))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := tests.NewRunner(cfg.ToleranceValue(), jobs, a.logger)
	summary, err := runner.Run(ctx, suites)
	if err != nil {
		return errors.Wrap(err, "check")
	}

	switch cfg.Output.Format {
	case output.FormatJSON:
		err = a.out.JSON(newCheckReport(summary))
	case output.FormatYAML:
		err = a.out.YAML(newCheckReport(summary))
	default:
		a.printCheckSummary(summary)
	}
	if err != nil {
		return errors.Wrap(err, "cannot render report")
	}

	if !summary.Success() {
		return errors.Newf("%d of %d reference cases failed", summary.Failed, summary.Total())
	}
	return nil
}

// printCheckSummary prints a per-suite summary followed by totals.
func (a *app) printCheckSummary(summary *tests.Summary) {
	w := a.out

	w.Section("Reference Suites")
	for _, sr := range summary.Suites {
		detail := fmt.Sprintf("%d/%d passed", sr.Passed, sr.Passed+sr.Failed)
		w.SummaryAction(sr.Suite, sr.Failed == 0, detail, "")
		for _, res := range sr.Results {
			if !res.Passed {
				w.SummaryFailed("      "+res.TestCase.Name, res.Diff)
			}
		}
	}

	w.SummaryHeader("Summary")
	w.SummaryPassed("Passed", strconv.Itoa(summary.Passed))
	if summary.Failed > 0 {
		w.SummaryFailed("Failed", strconv.Itoa(summary.Failed))
	}
	w.SummaryItem("Total", strconv.Itoa(summary.Total()))
	w.SummaryItem("Duration", summary.Duration.Round(time.Millisecond).String())

	if summary.Success() {
		w.FinalSuccess("All reference cases passed.")
	} else {
		w.FinalFailure("Reference cases failed.")
	}
}

// checkReport is the machine-readable form of a check run.
type checkReport struct {
	Passed int           `json:"passed" yaml:"passed"`
	Failed int           `json:"failed" yaml:"failed"`
	Suites []suiteReport `json:"suites" yaml:"suites"`
}

type suiteReport struct {
	Name     string          `json:"name" yaml:"name"`
	Passed   int             `json:"passed" yaml:"passed"`
	Failed   int             `json:"failed" yaml:"failed"`
	Failures []failureReport `json:"failures,omitempty" yaml:"failures,omitempty"`
}

type failureReport struct {
	Case string `json:"case" yaml:"case"`
	Diff string `json:"diff" yaml:"diff"`
}

func newCheckReport(summary *tests.Summary) checkReport {
	r := checkReport{Passed: summary.Passed, Failed: summary.Failed, Suites: make([]suiteReport, 0, len(summary.Suites))}
	for _, sr := range summary.Suites {
		s := suiteReport{Name: sr.Suite, Passed: sr.Passed, Failed: sr.Failed}
		for _, res := range sr.Results {
			if !res.Passed {
				s.Failures = append(s.Failures, failureReport{Case: res.TestCase.Name, Diff: res.Diff})
			}
		}
		r.Suites = append(r.Suites, s)
	}
	return r
}

// printCheckUsage prints the help text for the check command.
func (a *app) printCheckUsage() {
	w := a.out

	w.HelpTitle("polyroot check - run reference test suites")

	w.HelpSection("Usage:")
	w.HelpUsage("polyroot check [<dir>] [options]")

	w.HelpSection("Description:")
	w.Println("  Loads <dir>/<suite>/*.json reference cases, solves each polynomial and")
	w.Println("  compares the roots with the expected ones in any order.")

	w.HelpSection("Arguments:")
	w.HelpFlag("<dir>", "Suites directory (default: tests.directory)", helpFlagWidthShort)

	w.HelpSection("Options:")
	w.HelpFlag("--pattern=<glob>", "Case file pattern (default: *.json)", 16)
	w.HelpFlag("--jobs=<n>", "Cases solved concurrently", 16)
	w.HelpFlag("-h, --help", "Show this help", 16)

	w.HelpSection("Examples:")
	w.HelpExample("polyroot check", "Run suites from the configured directory")
	w.HelpExample("polyroot check --format=json testdata", "Machine-readable report")
	w.Println("")
}
