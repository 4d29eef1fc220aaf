package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorShape    = 2   // Indicates an operand shape mismatch.
	ExitErrorOverflow = 3   // Indicates an int64 overflow during evaluation.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorParse    = 5   // Indicates an operand literal could not be parsed.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ParseError represents a failure to parse a vector or matrix literal from
// user input. It captures the raw input and the byte offset at which parsing
// failed, enabling precise diagnostics.
type ParseError struct {
	// Input is the literal that failed to parse.
	Input string
	// Pos is the byte offset of the offending character.
	Pos int
	// Message explains the parse failure.
	Message string
}

// Error returns a formatted message describing the parse failure and its
// position in the input.
func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d in %q: %s", e.Pos, e.Input, e.Message)
}

// EvalError encapsulates an evaluation error while preserving the original
// cause. This allows for structured error handling and inspection of what
// went wrong while an operation was being evaluated.
type EvalError struct {
	// Op is the operation that was being evaluated.
	Op string
	// Cause is the underlying error that triggered this evaluation error.
	Cause error
}

// Error returns the error message from the underlying cause, prefixed with
// the operation name.
func (e EvalError) Error() string {
	return fmt.Sprintf("evaluating %s: %s", e.Op, e.Cause.Error())
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e EvalError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
