// Package output provides structured output and error handling for the wpdocgen CLI.
package output

import "errors"

// Exit codes:
// 0 = Success (including runs that only produced warnings)
// 1 = User error (bad flags, missing or invalid manifest)
// 2 = System error (destination not creatable, I/O failure)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, missing or malformed manifests.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: filesystem failures outside the user's control.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUserError
}
