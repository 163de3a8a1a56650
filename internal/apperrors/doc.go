// Package apperrors defines structured application error types for the
// numsep command-line driver, allowing for a clear distinction between error
// classes (usage, policy configuration, input) and a stable mapping from
// errors to process exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types support errors.Is() and errors.As() classification.
package apperrors
