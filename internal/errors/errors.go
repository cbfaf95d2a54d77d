// Package errors provides structured error types and exit codes for polyroot.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (reference case mismatch, unreadable suite, etc.)
	ExitUsageError   = 2 // Usage or configuration error (bad arguments, invalid config, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindConfig
	KindValidation
	KindNotFound
)

// PolyrootError is the base error type for polyroot.
type PolyrootError struct {
	Kind    ErrorKind
	Message string
	Command string // Command name if applicable
	Cause   error  // Underlying error
}

func (e *PolyrootError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Command != "" {
		return fmt.Sprintf("%s: %s", e.Command, msg)
	}
	return msg
}

func (e *PolyrootError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *PolyrootError) ExitCode() int {
	switch e.Kind {
	case KindUsage, KindConfig, KindValidation:
		return ExitUsageError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *PolyrootError {
	return &PolyrootError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *PolyrootError {
	return New(fmt.Sprintf(format, args...))
}

// Usage creates a new usage error.
func Usage(message string) *PolyrootError {
	return &PolyrootError{
		Kind:    KindUsage,
		Message: message,
	}
}

// Usagef creates a new usage error with formatting.
func Usagef(format string, args ...interface{}) *PolyrootError {
	return Usage(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *PolyrootError {
	return &PolyrootError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *PolyrootError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation wraps a validation failure.
func Validation(err error, message string) *PolyrootError {
	return &PolyrootError{
		Kind:    KindValidation,
		Message: message,
		Cause:   err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *PolyrootError {
	return &PolyrootError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// CommandError creates an error attributed to a CLI command.
func CommandError(kind ErrorKind, command, message string) *PolyrootError {
	return &PolyrootError{
		Kind:    kind,
		Command: command,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *PolyrootError {
	return &PolyrootError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var pe *PolyrootError
	if errors.As(err, &pe) {
		return pe.ExitCode()
	}
	return ExitRuntimeError
}
