package lexical

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

func TestParseIntegralBoundaries(t *testing.T) {
	b, err := ParseByte("-128")
	require.NoError(t, err)
	require.Equal(t, int8(math.MinInt8), b)
	_, err = ParseByte("128")
	require.ErrorIs(t, err, ErrMalformed)

	i, err := ParseInt("-2147483648")
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), i)
	require.Equal(t, "-2147483648", FormatInt(math.MinInt32))
	require.Equal(t, "2147483647", FormatInt(math.MaxInt32))
	_, err = ParseInt("-2147483649")
	require.ErrorIs(t, err, ErrMalformed)
	_, err = ParseInt("2147483648")
	require.ErrorIs(t, err, ErrMalformed)

	l, err := ParseLong("-9223372036854775808")
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), l)
	_, err = ParseLong("-9223372036854775809")
	require.ErrorIs(t, err, ErrMalformed)

	s, err := ParseShort("+017")
	require.NoError(t, err)
	require.Equal(t, int16(17), s)
	_, err = ParseShort("+-1")
	require.ErrorIs(t, err, ErrMalformed)
	_, err = ParseShort("1_000")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseBoolean(t *testing.T) {
	for text, want := range map[string]bool{"true": true, "1": true, "false": false, "0": false, " true\n": true} {
		got, err := ParseBoolean(text)
		require.NoError(t, err, text)
		require.Equal(t, want, got, text)
	}
	for _, text := range []string{"True", "yes", "", "2"} {
		_, err := ParseBoolean(text)
		require.ErrorIs(t, err, ErrMalformed, text)
	}
}

func TestParseDecimalCanonical(t *testing.T) {
	tests := map[string]string{
		"1.500":  "1.5",
		"2.00":   "2",
		"-0.0":   "0",
		"+007.1": "7.1",
		".25":    "0.25",
	}
	for in, want := range tests {
		d, err := ParseDecimal(in)
		require.NoError(t, err, in)
		require.Equal(t, want, FormatDecimal(d), in)
	}
	_, err := ParseDecimal("1.2.3")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseFloatSpecials(t *testing.T) {
	f, err := ParseFloat("INF")
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(f), 1))
	d, err := ParseDouble("-INF")
	require.NoError(t, err)
	require.True(t, math.IsInf(d, -1))
	d, err = ParseDouble("NaN")
	require.NoError(t, err)
	require.True(t, math.IsNaN(d))
	for _, text := range []string{"+INF", "1.0f", "2D", "inf", "1e400"} {
		_, err := ParseDouble(text)
		require.ErrorIs(t, err, ErrMalformed, text)
	}
	_, err = ParseFloat("1e39")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseQName(t *testing.T) {
	ns := MapContext{"p": "urn:p", "": "urn:d"}
	q, err := ParseQName("p:x", ns)
	require.NoError(t, err)
	require.Equal(t, QNameValue{Namespace: "urn:p", Local: "x", Prefix: "p"}, q)
	q, err = ParseQName("x", ns)
	require.NoError(t, err)
	require.Equal(t, "urn:d", q.Namespace)
	q, err = ParseQName("x", nil)
	require.NoError(t, err)
	require.Empty(t, q.Namespace)

	_, err = ParseQName("z:x", ns)
	require.ErrorIs(t, err, ErrUnresolvedPrefix)
	require.False(t, errors.Is(err, ErrMalformed))
	_, err = ParseQName(":x", ns)
	require.ErrorIs(t, err, ErrMalformed)
	require.Equal(t, "p:x", FormatQName(QNameValue{Namespace: "urn:p", Local: "x", Prefix: "p"}))
}

func TestParseBinary(t *testing.T) {
	b, err := ParseHexBinary("0fA1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x0f, 0xa1}, b)
	require.Equal(t, "0FA1", FormatHexBinary(b))
	_, err = ParseHexBinary("abc")
	require.ErrorIs(t, err, ErrMalformed)

	b, err = ParseBase64Binary("AQID\nBA==")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, b)
	require.Equal(t, "AQIDBA==", FormatBase64Binary(b))
	_, err = ParseBase64Binary("AQI")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseStringUntouched(t *testing.T) {
	v, err := Parse("  a b  ", String, nil)
	require.NoError(t, err)
	require.Equal(t, "  a b  ", Format(v))
}

func TestParseErrorReturnsZeroValue(t *testing.T) {
	v, err := Parse("x", Int, nil)
	require.ErrorIs(t, err, ErrMalformed)
	require.Equal(t, None, v.Kind())
	_, err = Parse("x", None, nil)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLenientFallbacks(t *testing.T) {
	var c xsderrors.Collector
	require.False(t, LenientBoolean("maybe", &c))
	require.Equal(t, int8(0), LenientByte("300", &c))
	require.Equal(t, int16(0), LenientShort("x", &c))
	require.Equal(t, int32(0), LenientInt("x", &c))
	require.Equal(t, int64(0), LenientLong("x", &c))
	require.Equal(t, "0", LenientInteger("x", &c).String())
	require.Equal(t, "0", LenientDecimal("x", &c).String())
	require.True(t, math.IsNaN(float64(LenientFloat("x", &c))))
	require.True(t, math.IsNaN(LenientDouble("x", &c)))
	require.Equal(t, QNameValue{}, LenientQName("u:x", nil, &c))
	require.True(t, LenientDateTime("x", &c).Time.IsZero())
	require.True(t, LenientDate("x", &c).Time.IsZero())
	require.True(t, LenientTime("x", &c).Time.IsZero())
	require.Equal(t, "PT0S", LenientDuration("x", &c).Format())
	require.Empty(t, LenientHexBinary("x", &c))
	require.Empty(t, LenientBase64Binary("!", &c))
	require.Equal(t, 16, c.Len())

	got := c.Diagnostics()
	require.Equal(t, string(xsderrors.ErrLexicalMalformed), got[0].Code)
	require.Equal(t, "maybe", got[0].Actual)
	require.Equal(t, string(xsderrors.ErrLexicalUnresolvedPrefix), got[9].Code)

	require.Equal(t, int32(7), LenientInt("7", nil))
	v := Lenient("x", Double, nil, nil)
	require.True(t, math.IsNaN(v.Float64()))
	v = Lenient("x", Decimal, nil, xsderrors.Discard)
	require.Equal(t, "0", Format(v))
	v = Lenient("x", Boolean, nil, nil)
	require.Equal(t, Boolean, v.Kind())
	require.False(t, v.Bool())
}
