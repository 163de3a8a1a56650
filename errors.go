package numsep

import "fmt"

// ConfigError reports an invalid SeparatorPolicy, such as a zero or negative
// group size. It identifies which policy field was invalid so the failure is
// attributable without string matching.
//
// ConfigError supports errors.As:
//
//	var cfgErr numsep.ConfigError
//	if errors.As(err, &cfgErr) {
//		log.Printf("bad policy field %s", cfgErr.Field)
//	}
type ConfigError struct {
	// Field is the name of the policy field that failed validation.
	Field string
	// Message explains the specific configuration error.
	Message string
}

// Error returns a formatted message describing the invalid configuration.
func (e ConfigError) Error() string {
	return fmt.Sprintf("separator policy: invalid %s: %s", e.Field, e.Message)
}

// newConfigError creates a ConfigError for the given field with a formatted
// message.
func newConfigError(field, format string, a ...any) error {
	return ConfigError{Field: field, Message: fmt.Sprintf(format, a...)}
}
