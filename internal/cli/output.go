// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Stream* functions consume an input stream item by item.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pboivin/numsep"
	"github.com/pboivin/numsep/internal/apperrors"
)

// DisplayResult writes one formatted value followed by a newline.
func DisplayResult(out io.Writer, formatted string) {
	fmt.Fprintln(out, formatted)
}

// DisplayError writes an error message to the error stream.
func DisplayError(errWriter io.Writer, err error) {
	fmt.Fprintf(errWriter, "Error: %v\n", err)
}

// FormatPolicySummary returns a compact single-line description of a
// separator policy, used for verbose diagnostics.
func FormatPolicySummary(p numsep.SeparatorPolicy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sep=%q groups=%v", p.Separator, p.Groups)
	if p.DecimalSeparator != "" {
		fmt.Fprintf(&b, " decimal=%q", p.DecimalSeparator)
	}
	if len(p.FractionalGroups) > 0 {
		fmt.Fprintf(&b, " frac-groups=%v frac-sep=%q", p.FractionalGroups, p.FractionalSeparator)
	}
	if p.Digits != "" {
		fmt.Fprintf(&b, " digits=%q", p.Digits)
	}
	return b.String()
}

// StreamLines reads r line by line and passes each line to emit, stopping
// early when the context is canceled or emit returns an error. The returned
// error is nil on a clean end of stream.
func StreamLines(ctx context.Context, r io.Reader, emit func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	return apperrors.WrapError(scanner.Err(), "reading input")
}
