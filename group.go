package numsep

import "strings"

// integerWidths partitions a run of ndigits digits into group widths,
// ordered left to right. Sizes are consumed from groups starting at the
// rightmost group of the number; once the sequence is exhausted, the last
// size repeats indefinitely. The leftmost group absorbs whatever remains,
// so it may be shorter than its nominal size but is never empty.
func integerWidths(ndigits int, groups []int) []int {
	if ndigits <= 0 {
		return nil
	}
	if len(groups) == 0 {
		return []int{ndigits}
	}

	widths := make([]int, 0, ndigits/groups[len(groups)-1]+1)
	remaining := ndigits
	for i := 0; remaining > 0; i++ {
		size := groups[min(i, len(groups)-1)]
		if size > remaining {
			size = remaining
		}
		widths = append(widths, size)
		remaining -= size
	}

	// Collected right to left; flip to emission order.
	for l, r := 0, len(widths)-1; l < r; l, r = l+1, r-1 {
		widths[l], widths[r] = widths[r], widths[l]
	}
	return widths
}

// fractionalWidths partitions ndigits fractional digits into group widths.
// Unlike the integer part, sizes are consumed in order starting at the digit
// after the decimal point, with the same repeat-last rule; the final group
// absorbs whatever remains.
func fractionalWidths(ndigits int, groups []int) []int {
	if ndigits <= 0 {
		return nil
	}
	if len(groups) == 0 {
		return []int{ndigits}
	}

	widths := make([]int, 0, ndigits/groups[len(groups)-1]+1)
	remaining := ndigits
	for i := 0; remaining > 0; i++ {
		size := groups[min(i, len(groups)-1)]
		if size > remaining {
			size = remaining
		}
		widths = append(widths, size)
		remaining -= size
	}
	return widths
}

// joinGroups writes run to b split into the given widths, with sep between
// consecutive groups. Widths count runes, not bytes, so multi-byte digits
// and multi-byte separators are never split. A separator is only ever
// written between two groups, never at either end.
func joinGroups(b *strings.Builder, run string, widths []int, sep string) {
	if len(widths) <= 1 || sep == "" {
		b.WriteString(run)
		return
	}

	group := 0 // index into widths
	taken := 0 // runes emitted from the current group
	for _, r := range run {
		if taken == widths[group] {
			b.WriteString(sep)
			group++
			taken = 0
		}
		b.WriteRune(r)
		taken++
	}
}
