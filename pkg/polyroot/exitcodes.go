// Package polyroot provides public constants for tools that wrap the
// polyroot CLI.
package polyroot

// Exit codes returned by the polyroot CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (a reference case did not match, a suite could not be loaded, etc.).
	ExitFailure = 1

	// ExitUsageError indicates invalid arguments or configuration
	// (wrong coefficient count, unparsable number, schema violation, etc.).
	ExitUsageError = 2
)
