package num

// scanSign consumes an optional leading sign. start is the index of the
// first digit. A sign with nothing after it and "+-" are rejected here so
// every parser reports them the same way.
func scanSign(b []byte) (negative bool, start int, err *ParseError) {
	if len(b) == 0 {
		return false, 0, fail(ParseEmpty, 0)
	}
	switch b[0] {
	case '-':
		negative, start = true, 1
	case '+':
		if len(b) > 1 && b[1] == '-' {
			return false, 0, fail(ParseMultipleSigns, 1)
		}
		start = 1
	}
	if start == len(b) {
		return false, 0, fail(ParseNoDigits, start)
	}
	return negative, start, nil
}

// firstNonDigit returns the index of the first byte of b[from:] that is not
// an ASCII digit, or -1.
func firstNonDigit(b []byte, from int) int {
	for i := from; i < len(b); i++ {
		if !isDigit(b[i]) {
			return i
		}
	}
	return -1
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == '0' {
		i++
	}
	return b[i:]
}

func trimTrailingZeros(b []byte) []byte {
	j := len(b)
	for j > 0 && b[j-1] == '0' {
		j--
	}
	return b[:j]
}
