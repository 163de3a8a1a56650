package numsep

import "strings"

// Digit alphabets for constructing separator policies.
const (
	// DigitsDecimal contains the ASCII decimal digits.
	DigitsDecimal = "0123456789"

	// DigitsHex contains the ASCII hexadecimal digits in both cases.
	DigitsHex = "0123456789abcdefABCDEF"
)

// SeparatorPolicy describes how digit-group separators are inserted into the
// textual form of a number.
//
// A policy is an immutable configuration value: it holds no numeric state, no
// formatting call mutates it, and a single policy may be shared by any number
// of concurrent callers without synchronization.
//
// The zero value is a valid policy that inserts no separators.
type SeparatorPolicy struct {
	// Separator is the string inserted between digit groups in the integer
	// part. It may be any UTF-8 string, including a multi-rune string such
	// as " · ". An empty separator disables separation.
	Separator string

	// Groups lists the group sizes, from right to left across the integer
	// part, with the last size giving the size of all subsequent groups.
	//
	// To group by threes, as is typical in many places, use []int{3}. To
	// get a grouping like 1,23,45,67,890, where the rightmost group has
	// size three and the others size two, use []int{3, 2}.
	//
	// A nil or empty slice means no grouping. Every size must be positive;
	// a zero or negative size is reported as a ConfigError.
	Groups []int

	// DecimalSeparator is the string joining the integer and fractional
	// parts in the output. When empty, the scanned decimal point is kept
	// as-is.
	DecimalSeparator string

	// FractionalGroups optionally groups the digits after the decimal
	// point. Sizes are applied left to right, starting at the digit
	// immediately after the decimal point, with the same repeat-last rule
	// as Groups. Empty means fractional digits are emitted verbatim.
	FractionalGroups []int

	// FractionalSeparator is the string inserted between fractional
	// groups.
	FractionalSeparator string

	// Digits is the set of runes treated as digits when scanning the
	// input. If there are multiple runs of digits separated by non-digits,
	// only the first run is grouped; this is what keeps a minus sign or a
	// currency prefix attached to the number. Empty means DigitsDecimal.
	Digits string
}

// Predefined policies for common separator styles. Each groups the integer
// part every three decimal digits; Hexadecimal groups every four hex digits.
var (
	// Commas places a comma every three digits: 1,234,567.
	Commas = SeparatorPolicy{Separator: ",", Groups: []int{3}}

	// Spaces places a space every three digits: 1 234 567.
	Spaces = SeparatorPolicy{Separator: " ", Groups: []int{3}}

	// Underscores places an underscore every three digits: 1_234_567.
	Underscores = SeparatorPolicy{Separator: "_", Groups: []int{3}}

	// Dots places a period every three digits: 1.234.567.
	Dots = SeparatorPolicy{Separator: ".", Groups: []int{3}}

	// Hexadecimal places a space every four hexadecimal digits: dead beef.
	Hexadecimal = SeparatorPolicy{Separator: " ", Groups: []int{4}, Digits: DigitsHex}
)

// Validate checks the policy for configuration errors. It returns a
// ConfigError naming the offending field when Groups or FractionalGroups
// contains a non-positive size, and nil otherwise.
//
// Validation also runs inside every formatting call, so calling Validate
// up front is optional; it lets a caller fail fast at construction time and
// treat later formatting as infallible.
func (p SeparatorPolicy) Validate() error {
	if err := validateGroups("Groups", p.Groups); err != nil {
		return err
	}
	return validateGroups("FractionalGroups", p.FractionalGroups)
}

// validateGroups reports a ConfigError for the first non-positive group size.
func validateGroups(field string, groups []int) error {
	for i, size := range groups {
		if size <= 0 {
			return newConfigError(field, "group size %d at index %d, want a positive integer", size, i)
		}
	}
	return nil
}

// isDigit reports whether r belongs to the policy's digit alphabet.
func (p SeparatorPolicy) isDigit(r rune) bool {
	digits := p.Digits
	if digits == "" {
		digits = DigitsDecimal
	}
	return strings.ContainsRune(digits, r)
}

// WithCommas formats v with a comma every three digits.
// It is equivalent to Commas.Format(v).
func WithCommas(v any) string { return formatKnownValid(Commas, v) }

// WithSpaces formats v with a space every three digits.
// It is equivalent to Spaces.Format(v).
func WithSpaces(v any) string { return formatKnownValid(Spaces, v) }

// WithUnderscores formats v with an underscore every three digits.
// It is equivalent to Underscores.Format(v).
func WithUnderscores(v any) string { return formatKnownValid(Underscores, v) }

// WithDots formats v with a period every three digits.
// It is equivalent to Dots.Format(v).
func WithDots(v any) string { return formatKnownValid(Dots, v) }

// formatKnownValid formats v with a policy that is known to pass validation,
// which is the only failure mode of Format.
func formatKnownValid(p SeparatorPolicy, v any) string {
	s, _ := p.Format(v)
	return s
}
