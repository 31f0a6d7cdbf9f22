package lexical

import (
	"errors"
	"math"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
	"github.com/jacoelho/inst2xsd/internal/num"
	"github.com/jacoelho/inst2xsd/internal/value"
)

// The Lenient helpers never fail. A malformed literal is reported to sink
// and replaced by the fallback named on each function; a nil sink drops the
// report.

func diagnosticFor(err error, text string) xsderrors.Diagnostic {
	code := xsderrors.ErrLexicalMalformed
	if errors.Is(err, ErrUnresolvedPrefix) {
		code = xsderrors.ErrLexicalUnresolvedPrefix
	}
	d := xsderrors.NewDiagnostic(code, err.Error(), "")
	d.Actual = text
	return d
}

func report(sink xsderrors.Sink, err error, text string) {
	if sink != nil {
		sink.Report(diagnosticFor(err, text))
	}
}

// LenientBoolean falls back to false.
func LenientBoolean(text string, sink xsderrors.Sink) bool {
	v, err := ParseBoolean(text)
	if err != nil {
		report(sink, err, text)
		return false
	}
	return v
}

// LenientByte falls back to 0.
func LenientByte(text string, sink xsderrors.Sink) int8 {
	v, err := ParseByte(text)
	if err != nil {
		report(sink, err, text)
		return 0
	}
	return v
}

// LenientShort falls back to 0.
func LenientShort(text string, sink xsderrors.Sink) int16 {
	v, err := ParseShort(text)
	if err != nil {
		report(sink, err, text)
		return 0
	}
	return v
}

// LenientInt falls back to 0.
func LenientInt(text string, sink xsderrors.Sink) int32 {
	v, err := ParseInt(text)
	if err != nil {
		report(sink, err, text)
		return 0
	}
	return v
}

// LenientLong falls back to 0.
func LenientLong(text string, sink xsderrors.Sink) int64 {
	v, err := ParseLong(text)
	if err != nil {
		report(sink, err, text)
		return 0
	}
	return v
}

// LenientInteger falls back to 0.
func LenientInteger(text string, sink xsderrors.Sink) num.Int {
	v, err := ParseInteger(text)
	if err != nil {
		report(sink, err, text)
		return num.FromInt64(0)
	}
	return v
}

// LenientDecimal falls back to 0.
func LenientDecimal(text string, sink xsderrors.Sink) num.Dec {
	v, err := ParseDecimal(text)
	if err != nil {
		report(sink, err, text)
		return zeroDecimal()
	}
	return v
}

// LenientFloat falls back to NaN.
func LenientFloat(text string, sink xsderrors.Sink) float32 {
	v, err := ParseFloat(text)
	if err != nil {
		report(sink, err, text)
		return float32(math.NaN())
	}
	return v
}

// LenientDouble falls back to NaN.
func LenientDouble(text string, sink xsderrors.Sink) float64 {
	v, err := ParseDouble(text)
	if err != nil {
		report(sink, err, text)
		return math.NaN()
	}
	return v
}

// LenientQName falls back to the zero QNameValue.
func LenientQName(text string, ns NamespaceContext, sink xsderrors.Sink) QNameValue {
	v, err := ParseQName(text, ns)
	if err != nil {
		report(sink, err, text)
		return QNameValue{}
	}
	return v
}

// LenientDateTime falls back to the zero Temporal.
func LenientDateTime(text string, sink xsderrors.Sink) value.Temporal {
	v, err := ParseDateTime(text)
	if err != nil {
		report(sink, err, text)
		return value.Temporal{Kind: value.TemporalDateTime}
	}
	return v
}

// LenientDate falls back to the zero Temporal.
func LenientDate(text string, sink xsderrors.Sink) value.Temporal {
	v, err := ParseDate(text)
	if err != nil {
		report(sink, err, text)
		return value.Temporal{Kind: value.TemporalDate}
	}
	return v
}

// LenientTime falls back to the zero Temporal.
func LenientTime(text string, sink xsderrors.Sink) value.Temporal {
	v, err := ParseTime(text)
	if err != nil {
		report(sink, err, text)
		return value.Temporal{Kind: value.TemporalTime}
	}
	return v
}

// LenientDuration falls back to the zero duration.
func LenientDuration(text string, sink xsderrors.Sink) value.Duration {
	v, err := ParseDuration(text)
	if err != nil {
		report(sink, err, text)
		return value.Duration{}
	}
	return v
}

// LenientHexBinary falls back to an empty slice.
func LenientHexBinary(text string, sink xsderrors.Sink) []byte {
	v, err := ParseHexBinary(text)
	if err != nil {
		report(sink, err, text)
		return []byte{}
	}
	return v
}

// LenientBase64Binary falls back to an empty slice.
func LenientBase64Binary(text string, sink xsderrors.Sink) []byte {
	v, err := ParseBase64Binary(text)
	if err != nil {
		report(sink, err, text)
		return []byte{}
	}
	return v
}

// Lenient parses text as kind and falls back to the kind's documented
// zero value on error.
func Lenient(text string, kind Kind, ns NamespaceContext, sink xsderrors.Sink) Value {
	v, err := Parse(text, kind, ns)
	if err == nil {
		return v
	}
	report(sink, err, text)
	return fallback(kind)
}

func fallback(kind Kind) Value {
	switch kind {
	case Boolean:
		return BooleanValue(false)
	case Byte:
		return ByteValue(0)
	case Short:
		return ShortValue(0)
	case Int:
		return IntValue(0)
	case Long:
		return LongValue(0)
	case Integer:
		return IntegerValue(num.FromInt64(0))
	case Decimal:
		return DecimalValue(zeroDecimal())
	case Float:
		return FloatValue(float32(math.NaN()))
	case Double:
		return DoubleValue(math.NaN())
	case QName:
		return QNameOf(QNameValue{})
	case DateTime:
		return TemporalValue(value.Temporal{Kind: value.TemporalDateTime})
	case Date:
		return TemporalValue(value.Temporal{Kind: value.TemporalDate})
	case Time:
		return TemporalValue(value.Temporal{Kind: value.TemporalTime})
	case Duration:
		return DurationValue(value.Duration{})
	case HexBinary:
		return HexBinaryValue(nil)
	case Base64Binary:
		return Base64BinaryValue(nil)
	case String:
		return StringValue("")
	default:
		return Value{}
	}
}

func zeroDecimal() num.Dec {
	zero, _ := num.ParseDec([]byte("0"))
	return zero
}
