// Package numsep formats numbers with separators between groups of digits.
// Typically this is used to add commas or spaces every three digits from the
// right, but the behavior is configured through a [SeparatorPolicy].
//
// The simplest entry points are the convenience helpers built on the
// predefined policies:
//
//	numsep.WithCommas(12345)      // "12,345"
//	numsep.WithCommas(-12345)     // "-12,345"
//	numsep.WithSpaces(9876.5)     // "9 876.5"
//
// A custom policy gives full control over group sizes and separator strings:
//
//	policy := numsep.SeparatorPolicy{
//		Separator: ",",
//		Groups:    []int{3, 2},
//	}
//	policy.FormatInt(1234567890) // "1,23,45,67,890"
//
// Group sizes are consumed right to left across the integer part; the last
// size repeats for all remaining digits, so the two-element sequence above
// groups the rightmost three digits and then every two digits after that.
//
// Formatting is pure: a policy holds no state, is never mutated by a call,
// and may be shared freely across goroutines. The only failure mode is an
// invalid policy (a non-positive group size), reported as a [ConfigError].
package numsep
