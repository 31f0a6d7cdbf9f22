package num

import (
	"math"
	"strconv"
)

// FloatClass separates finite values from the special float tokens.
type FloatClass uint8

const (
	FloatFinite FloatClass = iota
	FloatPosInf
	FloatNegInf
	FloatNaN
)

var specialFloats = map[string]FloatClass{
	"INF":  FloatPosInf,
	"-INF": FloatNegInf,
	"NaN":  FloatNaN,
}

// IsSpecialFloat reports whether b is INF, -INF or NaN.
func IsSpecialFloat(b []byte) bool {
	_, ok := specialFloats[string(b)]
	return ok
}

// ParseFloat32 parses an xs:float lexical value.
func ParseFloat32(b []byte) (float32, FloatClass, *ParseError) {
	f, class, err := ParseFloat(b, 32)
	return float32(f), class, err
}

// ParseFloat64 parses an xs:double lexical value.
func ParseFloat64(b []byte) (float64, FloatClass, *ParseError) {
	return ParseFloat(b, 64)
}

// ParseFloat parses an xs:float or xs:double lexical value at the given bit
// size. Finite literals beyond the range round to an infinity and are
// classed as such rather than rejected.
func ParseFloat(b []byte, bits int) (float64, FloatClass, *ParseError) {
	if len(b) == 0 {
		return 0, FloatFinite, fail(ParseEmpty, 0)
	}
	if class, ok := specialFloats[string(b)]; ok {
		switch class {
		case FloatPosInf:
			return math.Inf(1), class, nil
		case FloatNegInf:
			return math.Inf(-1), class, nil
		default:
			return math.NaN(), class, nil
		}
	}
	if err := scanFloat(b); err != nil {
		return 0, FloatFinite, err
	}
	// scanFloat admits only decimal mantissas, so ParseFloat can fail on range alone.
	f, _ := strconv.ParseFloat(string(b), bits)
	switch {
	case math.IsInf(f, 1):
		return f, FloatPosInf, nil
	case math.IsInf(f, -1):
		return f, FloatNegInf, nil
	}
	return f, FloatFinite, nil
}

// scanFloat checks the finite float grammar: an optional sign, a mantissa
// with at least one digit around an optional dot, and an optional exponent.
func scanFloat(b []byte) *ParseError {
	last := len(b) - 1
	switch b[last] {
	case 'f', 'F', 'd', 'D':
		// "1INF" ends in F but is a bad token, not a Java-style suffix.
		if last < 2 || string(b[last-2:]) != "INF" {
			return fail(ParseBadSuffix, last)
		}
	}
	_, i, err := scanSign(b)
	if err != nil {
		return err
	}
	digits := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		digits++
	}
	if i < len(b) && b[i] == '.' {
		for i++; i < len(b) && isDigit(b[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		if i < len(b) {
			return fail(ParseBadChar, i)
		}
		return fail(ParseNoDigits, i)
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		at := firstNonDigit(b, i)
		if i == len(b) || at == i {
			return fail(ParseBadChar, i)
		}
		if at > 0 {
			return fail(ParseBadChar, at)
		}
		return nil
	}
	if i < len(b) {
		return fail(ParseBadChar, i)
	}
	return nil
}
