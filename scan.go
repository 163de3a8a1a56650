package numsep

// digitSpan splits s into the text before its first contiguous run of
// digits, the run itself, and everything after it. When s contains no digit
// at all, the whole input is returned as the prefix and passes through a
// formatting call untouched.
//
// Scanning only the first run is what keeps a leading minus sign or currency
// symbol attached to the number, and leaves trailing text such as units or
// an exponent alone.
func digitSpan(s string, isDigit func(rune) bool) (before, run, after string) {
	start := -1
	for i, r := range s {
		if isDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return s, "", ""
	}

	end := len(s)
	for i, r := range s[start:] {
		if !isDigit(r) {
			end = start + i
			break
		}
	}
	return s[:start], s[start:end], s[end:]
}

// leadingDigits splits s at the end of its leading run of digits.
func leadingDigits(s string, isDigit func(rune) bool) (run, rest string) {
	end := len(s)
	for i, r := range s {
		if !isDigit(r) {
			end = i
			break
		}
	}
	return s[:end], s[end:]
}
