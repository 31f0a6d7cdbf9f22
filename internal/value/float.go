package value

import (
	"math"
	"strconv"
	"strings"
)

// CanonicalFloat returns the canonical lexical form for float/double values:
// a mantissa with one leading digit and an E exponent ("1.5E2"), or one of
// INF, -INF and NaN. The shortest digits that round-trip at the given bit size
// are used.
func CanonicalFloat(value float64, bits int) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "INF"
	case math.IsInf(value, -1):
		return "-INF"
	case value == 0:
		if math.Signbit(value) {
			return "-0.0E0"
		}
		return "0.0E0"
	}
	if bits != 32 {
		bits = 64
	}
	raw := strconv.FormatFloat(value, 'E', -1, bits)
	mantissa, exponent, _ := strings.Cut(raw, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return mantissa + "E" + exponent
	}
	return mantissa + "E" + strconv.Itoa(exp)
}
