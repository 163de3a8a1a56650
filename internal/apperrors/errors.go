package apperrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/pboivin/numsep"
)

// Application exit codes define the standard exit statuses for the program.
// These codes signal the outcome of the run to the calling shell.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error (e.g. failed input stream).
	ExitErrorConfig   = 4   // Indicates invalid flags or an invalid separator policy.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g. SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid flag
// value or an unknown policy name. It indicates that the program cannot
// proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w,
// so the wrapped error remains visible to errors.Is() and errors.As().
// Returns nil when err is nil.
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

// ExitCode maps an error to the process exit code it should produce. Both
// this package's ConfigError (flag-level problems) and the library's
// numsep.ConfigError (invalid policy values) count as configuration errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	var cliErr ConfigError
	if errors.As(err, &cliErr) {
		return ExitErrorConfig
	}
	var policyErr numsep.ConfigError
	if errors.As(err, &policyErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
