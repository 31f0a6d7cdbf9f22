package value

import "strings"

// TrimXMLWhitespace strips leading and trailing space, tab, CR and LF. The
// result aliases in.
func TrimXMLWhitespace(in []byte) []byte {
	return trimSpace(in)
}

// TrimXMLWhitespaceString is TrimXMLWhitespace for strings.
func TrimXMLWhitespaceString(in string) string {
	return trimSpace(in)
}

func trimSpace[T ~string | ~[]byte](in T) T {
	lo, hi := 0, len(in)
	for lo < hi && IsXMLWhitespaceByte(in[lo]) {
		lo++
	}
	for hi > lo && IsXMLWhitespaceByte(in[hi-1]) {
		hi--
	}
	return in[lo:hi]
}

// IsBlank reports whether s holds nothing but XML whitespace.
func IsBlank(s string) bool {
	return len(trimSpace(s)) == 0
}

// RemoveXMLWhitespace drops every XML whitespace character from s, as
// base64Binary content folded across lines needs.
func RemoveXMLWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && IsXMLWhitespaceByte(byte(r)) {
			return -1
		}
		return r
	}, s)
}

// IsXMLWhitespaceByte reports whether b is one of the four XML whitespace
// characters.
func IsXMLWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
