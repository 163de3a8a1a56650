// # Naming Conventions
//
// Formatting entry points follow a consistent pattern:
//
//   - Format* methods on [SeparatorPolicy] take a value of a specific kind,
//     render it to its canonical decimal form, and return the separated
//     string. They are pure functions with no side effects.
//
//   - [SeparatorPolicy.Format] dispatches dynamically over all supported
//     kinds, mirroring the package-level With* helpers.

package numsep

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FormatString inserts separators into the first run of digits found in s
// and returns the result. Text before and after that run passes through
// unchanged, so signs, currency symbols, units, and non-numeric input are
// preserved byte for byte.
//
// When the digit run is immediately followed by a decimal point and more
// digits, that second run is treated as the fractional part: the point is
// replaced by DecimalSeparator (when set) and the digits are grouped per
// FractionalGroups.
//
// The only possible error is a ConfigError for an invalid policy; for any
// valid policy the operation is total over all inputs.
func (p SeparatorPolicy) FormatString(s string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	before, run, after := digitSpan(s, p.isDigit)

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	b.WriteString(before)
	joinGroups(&b, run, integerWidths(utf8.RuneCountInString(run), p.Groups), p.Separator)
	p.writeFraction(&b, after)
	return b.String(), nil
}

// writeFraction emits the text following the integer digit run. A leading
// decimal point followed by at least one digit marks a fractional part;
// anything else passes through verbatim.
func (p SeparatorPolicy) writeFraction(b *strings.Builder, after string) {
	if !strings.HasPrefix(after, ".") {
		b.WriteString(after)
		return
	}

	run, rest := leadingDigits(after[1:], p.isDigit)
	if run == "" {
		b.WriteString(after)
		return
	}

	if p.DecimalSeparator != "" {
		b.WriteString(p.DecimalSeparator)
	} else {
		b.WriteByte('.')
	}
	joinGroups(b, run, fractionalWidths(utf8.RuneCountInString(run), p.FractionalGroups), p.FractionalSeparator)
	b.WriteString(rest)
}

// FormatInt formats a signed integer. The sign is emitted immediately before
// the first digit and is never separated from it.
func (p SeparatorPolicy) FormatInt(n int64) (string, error) {
	return p.FormatString(strconv.FormatInt(n, 10))
}

// FormatUint formats an unsigned integer.
func (p SeparatorPolicy) FormatUint(n uint64) (string, error) {
	return p.FormatString(strconv.FormatUint(n, 10))
}

// FormatFloat formats a floating-point value using its shortest decimal
// representation that round-trips, without exponent notation. Callers that
// need a specific precision should pre-round before formatting.
//
// Non-finite values keep their canonical textual form ("NaN", "+Inf",
// "-Inf") with no grouping applied. Negative zero formats as "-0".
func (p SeparatorPolicy) FormatFloat(f float64) (string, error) {
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if err := p.Validate(); err != nil {
			return "", err
		}
		return text, nil
	}
	return p.FormatString(text)
}

// FormatBig formats an arbitrary-precision integer. Grouping large values is
// the typical use: the decimal expansion of a number with tens of thousands
// of digits is unreadable without separators.
func (p SeparatorPolicy) FormatBig(x *big.Int) (string, error) {
	return p.FormatString(x.String())
}

// FormatDecimal formats an arbitrary-precision fixed-point decimal.
func (p SeparatorPolicy) FormatDecimal(d decimal.Decimal) (string, error) {
	return p.FormatString(d.String())
}

// Format formats any supported value: the built-in integer and float kinds,
// *big.Int, decimal.Decimal, strings, and anything implementing
// fmt.Stringer. Other values are rendered with fmt.Sprint first, so Format
// is total over anything printable.
func (p SeparatorPolicy) Format(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return p.FormatInt(int64(n))
	case int8:
		return p.FormatInt(int64(n))
	case int16:
		return p.FormatInt(int64(n))
	case int32:
		return p.FormatInt(int64(n))
	case int64:
		return p.FormatInt(n)
	case uint:
		return p.FormatUint(uint64(n))
	case uint8:
		return p.FormatUint(uint64(n))
	case uint16:
		return p.FormatUint(uint64(n))
	case uint32:
		return p.FormatUint(uint64(n))
	case uint64:
		return p.FormatUint(n)
	case uintptr:
		return p.FormatUint(uint64(n))
	case float32:
		// Render at 32-bit precision so float32 values keep their own
		// shortest representation.
		return p.FormatString(strconv.FormatFloat(float64(n), 'f', -1, 32))
	case float64:
		return p.FormatFloat(n)
	case *big.Int:
		return p.FormatBig(n)
	case decimal.Decimal:
		return p.FormatDecimal(n)
	case string:
		return p.FormatString(n)
	case fmt.Stringer:
		return p.FormatString(n.String())
	default:
		return p.FormatString(fmt.Sprint(v))
	}
}
