package num

import "math"

// Bounds is the inclusive value range of a fixed-width integral type.
type Bounds struct {
	Min int64
	Max int64
}

var (
	// Int8Bounds is the xs:byte range.
	Int8Bounds = Bounds{Min: math.MinInt8, Max: math.MaxInt8}
	// Int16Bounds is the xs:short range.
	Int16Bounds = Bounds{Min: math.MinInt16, Max: math.MaxInt16}
	// Int32Bounds is the xs:int range.
	Int32Bounds = Bounds{Min: math.MinInt32, Max: math.MaxInt32}
	// Int64Bounds is the xs:long range.
	Int64Bounds = Bounds{Min: math.MinInt64, Max: math.MaxInt64}
)

// ParseBounded parses a decimal integer lexical value that must fall within b.
//
// Digits accumulate as a negated magnitude so the most negative value of the
// range never passes through an unrepresentable positive intermediate. limit
// is the negated bound for the sign in use and limit2 is limit/10, the last
// accumulator value that can be multiplied by ten without leaving the range.
func ParseBounded(s []byte, b Bounds) (int64, *ParseError) {
	negative, i, err := scanSign(s)
	if err != nil {
		return 0, err
	}
	limit := -b.Max
	if negative {
		limit = b.Min
	}
	limit2 := limit / 10
	var acc int64
	for ; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) {
			return 0, fail(ParseBadChar, i)
		}
		d := int64(c - '0')
		if acc < limit2 {
			return 0, fail(ParseOverflow, i)
		}
		acc *= 10
		if acc < limit+d {
			return 0, fail(ParseOverflow, i)
		}
		acc -= d
	}
	if negative {
		return acc, nil
	}
	return -acc, nil
}
