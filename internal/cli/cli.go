// Package cli provides command-line interface functionality for polyroot.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/polyroot/internal/config"
	"github.com/AndreyAkinshin/polyroot/internal/errors"
	"github.com/AndreyAkinshin/polyroot/internal/logging"
	"github.com/AndreyAkinshin/polyroot/internal/output"
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Version is set at build time.
var Version = "dev"

// Help text alignment widths for consistent formatting.
const (
	helpFlagWidthShort  = 10 // Width for short flags like "-h, --help"
	helpFlagWidthGlobal = 24 // Width for global flags like "--tolerance-mode=<mode>"
)

// app carries the per-invocation state shared by commands.
type app struct {
	out    *output.Writer
	stderr io.Writer
	logger *zap.Logger
	opts   *GlobalOptions
}

// wantsHelp returns true if args contain -h or --help before any -- separator.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, output.New(), os.Stderr)
}

// RunWithWriters executes the CLI with explicit output streams and no color.
func RunWithWriters(args []string, stdout, stderr io.Writer) int {
	return run(args, output.NewWithWriters(stdout, stderr, false), stderr)
}

func run(args []string, out *output.Writer, stderr io.Writer) int {
	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		out.Hint("Run 'polyroot --help' for usage.")
		return errors.ExitUsageError
	}

	out.SetQuiet(opts.Quiet)
	logger := logging.New(logging.Options{Verbose: opts.Verbose, Quiet: opts.Quiet, Output: stderr})
	defer func() { _ = logger.Sync() }()

	a := &app{out: out, stderr: stderr, logger: logger, opts: opts}

	if opts.Version {
		a.printVersion()
		return errors.ExitSuccess
	}

	cmd := ""
	var cmdArgs []string
	if len(remaining) > 0 {
		cmd = remaining[0]
		cmdArgs = remaining[1:]
	}

	if opts.Help {
		switch cmd {
		case "check":
			a.printCheckUsage()
		case "config":
			a.printConfigUsage()
		case "completion":
			a.printCompletionUsage()
		default:
			a.printUsage()
		}
		return errors.ExitSuccess
	}

	// Route to command handler
	switch cmd {
	case "help":
		a.printUsage()
		return errors.ExitSuccess
	case "version":
		a.printVersion()
		return errors.ExitSuccess
	case "check":
		return a.exit(a.cmdCheck(cmdArgs))
	case "config":
		return a.exit(a.cmdConfig(cmdArgs))
	case "completion":
		return a.exit(a.cmdCompletion(cmdArgs))
	default:
		// Anything else is a coefficient list, possibly empty.
		return a.exit(a.cmdSolve(remaining))
	}
}

// exit reports err and converts it to a process exit code.
func (a *app) exit(err error) int {
	if err == nil {
		return errors.ExitSuccess
	}
	a.out.ErrorPrefix("%v", err)
	code := errors.GetExitCode(err)
	if code == errors.ExitUsageError {
		a.out.Hint("Run 'polyroot --help' for usage.")
	}
	return code
}

func (a *app) printVersion() {
	a.out.Println("polyroot %s", Version)
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet         bool
	Verbose       bool
	Help          bool
	Version       bool
	ConfigPath    string
	Format        string
	Tolerance     *float64
	ToleranceMode string
	Precision     *int
	Seed          *uint64
}

// valueFlags lists the flags that take a value, either as --flag=value or
// as --flag value.
var valueFlags = []string{"--config", "--format", "--tolerance", "--tolerance-mode", "--precision", "--seed"}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of a flag library because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Negative numbers such as -6 are coefficients, not flags
// - Everything after -- is positional
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--":
			remaining = append(remaining, args[i+1:]...)
			i = len(args)
			continue
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
		case arg == "-h" || arg == "--help":
			opts.Help = true
		case arg == "--version":
			opts.Version = true
		case isNumber(arg) || !strings.HasPrefix(arg, "-") || arg == "-":
			remaining = append(remaining, arg)
		default:
			name, value, hasValue := strings.Cut(arg, "=")
			if !isValueFlag(name) {
				if isCommandFlag(name) {
					// Left for the subcommand to interpret.
					remaining = append(remaining, arg)
					break
				}
				return nil, nil, fmt.Errorf("unknown flag: %s", arg)
			}
			if !hasValue {
				if i+1 >= len(args) {
					return nil, nil, fmt.Errorf("%s requires a value", name)
				}
				value = args[i+1]
				i++
			}
			if err := setValueFlag(opts, name, value); err != nil {
				return nil, nil, err
			}
		}
		i++
	}

	if err := validateGlobalOptions(opts); err != nil {
		return nil, nil, err
	}

	return opts, remaining, nil
}

func isValueFlag(name string) bool {
	for _, f := range valueFlags {
		if f == name {
			return true
		}
	}
	return false
}

// isCommandFlag reports whether name belongs to a subcommand.
func isCommandFlag(name string) bool {
	switch name {
	case "--pattern", "--jobs", "--alias":
		return true
	}
	return false
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func setValueFlag(opts *GlobalOptions, name, value string) error {
	switch name {
	case "--config":
		if value == "" {
			return fmt.Errorf("--config requires a non-empty path")
		}
		opts.ConfigPath = value
	case "--format":
		opts.Format = value
	case "--tolerance":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid --tolerance value %q: must be a number", value)
		}
		opts.Tolerance = &v
	case "--tolerance-mode":
		opts.ToleranceMode = value
	case "--precision":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid --precision value %q: must be an integer", value)
		}
		opts.Precision = &v
	case "--seed":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --seed value %q: must be a non-negative integer", value)
		}
		opts.Seed = &v
	}
	return nil
}

// validateGlobalOptions checks that global options are valid.
func validateGlobalOptions(opts *GlobalOptions) error {
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	if opts.Format != "" {
		if err := config.ValidateFormat(opts.Format); err != nil {
			return fmt.Errorf("invalid --format value: %v\n  example: polyroot --format=json 1 -3 2", err)
		}
	}

	if opts.ToleranceMode != "" {
		if _, ok := complexnum.ParseToleranceMode(opts.ToleranceMode); !ok {
			return fmt.Errorf("invalid --tolerance-mode value %q\n  valid values: %s",
				opts.ToleranceMode, strings.Join(complexnum.ValidToleranceModes(), ", "))
		}
	}

	if opts.Precision != nil {
		if err := config.ValidatePrecision(*opts.Precision); err != nil {
			return fmt.Errorf("invalid --precision value: %v", err)
		}
	}

	return nil
}

func (a *app) printUsage() {
	w := a.out

	w.HelpTitle("polyroot - closed-form roots of quadratic and cubic polynomials")

	w.HelpSection("Usage:")
	w.HelpUsage("polyroot [flags]                    Solve a random cubic")
	w.HelpUsage("polyroot [flags] <a> <b> <c>        Solve ax^2 + bx + c = 0")
	w.HelpUsage("polyroot [flags] <a> <b> <c> <d>    Solve ax^3 + bx^2 + cx + d = 0")

	w.HelpSection("Commands:")
	w.HelpCommand("check [<dir>]", "Run reference test suites", 16)
	w.HelpCommand("config validate", "Validate the configuration file", 16)
	w.HelpCommand("config show", "Print the effective configuration", 16)
	w.HelpCommand("completion", "Generate shell completion (bash, zsh, fish)", 16)
	w.HelpCommand("version", "Show version information", 16)

	a.printGlobalFlags()

	w.HelpSection("Environment:")
	w.HelpEnvVar(config.DefaultEnvVar, "Configuration file used when --config is absent", 16)

	w.HelpSection("Examples:")
	w.HelpExample("polyroot 1 -3 2", "Roots of x^2 - 3x + 2")
	w.HelpExample("polyroot 1 0 1", "Complex roots of x^2 + 1")
	w.HelpExample("polyroot --format=json 1 -6 11 -6", "Cubic roots as JSON")
	w.HelpExample("polyroot --seed=42", "Reproducible random cubic")
	w.HelpExample("polyroot check tests", "Run reference suites under tests/")
	w.Println("")
}

func (a *app) printGlobalFlags() {
	w := a.out
	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidthGlobal)
	w.HelpFlag("-v, --verbose", "Debug diagnostics on stderr", helpFlagWidthGlobal)
	w.HelpFlag("--config=<path>", "Configuration file (default: "+config.DefaultFileName+")", helpFlagWidthGlobal)
	w.HelpFlag("--format=<fmt>", "Output format: text, json, yaml", helpFlagWidthGlobal)
	w.HelpFlag("--tolerance=<x>", "Root comparison tolerance (default: 0.01)", helpFlagWidthGlobal)
	w.HelpFlag("--tolerance-mode=<mode>", "relative or absolute", helpFlagWidthGlobal)
	w.HelpFlag("--precision=<n>", "Fractional digits in text output", helpFlagWidthGlobal)
	w.HelpFlag("--seed=<n>", "Seed for random coefficients", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)
	w.HelpFlag("--version", "Show version", helpFlagWidthGlobal)
}
