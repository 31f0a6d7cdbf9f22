package num

import (
	"bytes"
	"strconv"
)

var zeroDigits = []byte{'0'}

// Int is an integer of any size held as its decimal digits. Digits never has
// leading zeros and zero is always Sign 0 with Digits "0".
type Int struct {
	Sign   int8
	Digits []byte
}

// ParseInt parses an xs:integer lexical value.
func ParseInt(b []byte) (Int, *ParseError) {
	negative, start, err := scanSign(b)
	if err != nil {
		return Int{}, err
	}
	if at := firstNonDigit(b, start); at >= 0 {
		return Int{}, fail(ParseBadChar, at)
	}
	return newInt(negative, trimLeadingZeros(b[start:])), nil
}

func newInt(negative bool, digits []byte) Int {
	if len(digits) == 0 {
		return Int{Digits: zeroDigits}
	}
	n := Int{Sign: 1, Digits: bytes.Clone(digits)}
	if negative {
		n.Sign = -1
	}
	return n
}

// FromInt64 converts v to an Int.
func FromInt64(v int64) Int {
	s := strconv.AppendInt(nil, v, 10)
	if v < 0 {
		return newInt(true, s[1:])
	}
	return newInt(false, trimLeadingZeros(s))
}

// Int64 returns the value and whether it fits in an int64.
func (a Int) Int64() (int64, bool) {
	v, err := ParseBounded(a.RenderCanonical(nil), Int64Bounds)
	return v, err == nil
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
func (a Int) Compare(b Int) int {
	switch {
	case a.Sign < b.Sign:
		return -1
	case a.Sign > b.Sign:
		return 1
	case a.Sign == 0:
		return 0
	}
	c := compareMagnitude(a.Digits, b.Digits)
	return c * int(a.Sign)
}

// RenderCanonical appends the canonical lexical form to dst.
func (a Int) RenderCanonical(dst []byte) []byte {
	switch a.Sign {
	case 0:
		return append(dst, '0')
	case -1:
		dst = append(dst, '-')
	}
	return append(dst, a.Digits...)
}

func (a Int) String() string {
	return string(a.RenderCanonical(nil))
}

// compareMagnitude orders two digit strings without leading zeros.
func compareMagnitude(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return bytes.Compare(a, b)
}
