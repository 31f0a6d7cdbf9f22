package lexical

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jacoelho/inst2xsd/internal/num"
	"github.com/jacoelho/inst2xsd/internal/value"
)

// Value is a parsed literal tagged with its kind. The zero Value has kind None.
type Value struct {
	dec      num.Dec
	integer  num.Int
	qname    QNameValue
	str      string
	bin      []byte
	duration value.Duration
	temporal value.Temporal
	f        float64
	i        int64
	b        bool
	kind     Kind
}

// Kind returns the kind the value was parsed as.
func (v Value) Kind() Kind { return v.kind }

// BooleanValue wraps b.
func BooleanValue(b bool) Value { return Value{kind: Boolean, b: b} }

// ByteValue wraps n.
func ByteValue(n int8) Value { return Value{kind: Byte, i: int64(n)} }

// ShortValue wraps n.
func ShortValue(n int16) Value { return Value{kind: Short, i: int64(n)} }

// IntValue wraps n.
func IntValue(n int32) Value { return Value{kind: Int, i: int64(n)} }

// LongValue wraps n.
func LongValue(n int64) Value { return Value{kind: Long, i: n} }

// IntegerValue wraps n.
func IntegerValue(n num.Int) Value { return Value{kind: Integer, integer: n} }

// DecimalValue wraps d.
func DecimalValue(d num.Dec) Value { return Value{kind: Decimal, dec: d} }

// FloatValue wraps f.
func FloatValue(f float32) Value { return Value{kind: Float, f: float64(f)} }

// DoubleValue wraps f.
func DoubleValue(f float64) Value { return Value{kind: Double, f: f} }

// QNameOf wraps q.
func QNameOf(q QNameValue) Value { return Value{kind: QName, qname: q} }

// TemporalValue wraps t with the kind matching t.Kind.
func TemporalValue(t value.Temporal) Value {
	k := DateTime
	switch t.Kind {
	case value.TemporalDate:
		k = Date
	case value.TemporalTime:
		k = Time
	}
	return Value{kind: k, temporal: t}
}

// DurationValue wraps d.
func DurationValue(d value.Duration) Value { return Value{kind: Duration, duration: d} }

// HexBinaryValue wraps a copy of b.
func HexBinaryValue(b []byte) Value { return Value{kind: HexBinary, bin: bytes.Clone(b)} }

// Base64BinaryValue wraps a copy of b.
func Base64BinaryValue(b []byte) Value { return Value{kind: Base64Binary, bin: bytes.Clone(b)} }

// StringValue wraps s unchanged.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Int64 returns the payload of the bounded integer kinds.
func (v Value) Int64() int64 { return v.i }

// Integer returns the payload of an Integer value.
func (v Value) Integer() num.Int { return v.integer }

// Decimal returns the payload of a Decimal value.
func (v Value) Decimal() num.Dec { return v.dec }

// Float64 returns the payload of Float and Double values.
func (v Value) Float64() float64 { return v.f }

// QName returns the payload of a QName value.
func (v Value) QName() QNameValue { return v.qname }

// Temporal returns the payload of DateTime, Date and Time values.
func (v Value) Temporal() value.Temporal { return v.temporal }

// Duration returns the payload of a Duration value.
func (v Value) Duration() value.Duration { return v.duration }

// Bytes returns the payload of the binary kinds.
func (v Value) Bytes() []byte { return v.bin }

// Str returns the payload of a String value.
func (v Value) Str() string { return v.str }

// Equal reports value equality within one kind. NaN equals NaN so that a
// formatted NaN round-trips.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case None:
		return true
	case Boolean:
		return v.b == o.b
	case Byte, Short, Int, Long:
		return v.i == o.i
	case Integer:
		return v.integer.Compare(o.integer) == 0
	case Decimal:
		return v.dec.Equal(o.dec)
	case Float, Double:
		if math.IsNaN(v.f) || math.IsNaN(o.f) {
			return math.IsNaN(v.f) && math.IsNaN(o.f)
		}
		return v.f == o.f && math.Signbit(v.f) == math.Signbit(o.f)
	case QName:
		return v.qname.Namespace == o.qname.Namespace && v.qname.Local == o.qname.Local
	case DateTime, Date, Time:
		return v.temporal.Equal(o.temporal)
	case Duration:
		return v.duration.Equal(o.duration)
	case HexBinary, Base64Binary:
		return bytes.Equal(v.bin, o.bin)
	default:
		return v.str == o.str
	}
}

// String implements fmt.Stringer for debugging.
func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, Format(v))
}

// Parse parses text as kind. QName literals resolve their prefix through ns.
// On error the zero Value is returned.
func Parse(text string, kind Kind, ns NamespaceContext) (Value, error) {
	v, err := parseKind(text, kind, ns)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func parseKind(text string, kind Kind, ns NamespaceContext) (Value, error) {
	switch kind {
	case Boolean:
		b, err := ParseBoolean(text)
		return BooleanValue(b), err
	case Byte:
		n, err := ParseByte(text)
		return ByteValue(n), err
	case Short:
		n, err := ParseShort(text)
		return ShortValue(n), err
	case Int:
		n, err := ParseInt(text)
		return IntValue(n), err
	case Long:
		n, err := ParseLong(text)
		return LongValue(n), err
	case Integer:
		n, err := ParseInteger(text)
		return IntegerValue(n), err
	case Decimal:
		d, err := ParseDecimal(text)
		return DecimalValue(d), err
	case Float:
		f, err := ParseFloat(text)
		return FloatValue(f), err
	case Double:
		f, err := ParseDouble(text)
		return DoubleValue(f), err
	case QName:
		q, err := ParseQName(text, ns)
		return QNameOf(q), err
	case DateTime:
		t, err := ParseDateTime(text)
		return Value{kind: DateTime, temporal: t}, err
	case Date:
		t, err := ParseDate(text)
		return Value{kind: Date, temporal: t}, err
	case Time:
		t, err := ParseTime(text)
		return Value{kind: Time, temporal: t}, err
	case Duration:
		d, err := ParseDuration(text)
		return DurationValue(d), err
	case HexBinary:
		b, err := ParseHexBinary(text)
		return Value{kind: HexBinary, bin: b}, err
	case Base64Binary:
		b, err := ParseBase64Binary(text)
		return Value{kind: Base64Binary, bin: b}, err
	case String:
		return StringValue(text), nil
	default:
		return Value{}, fmt.Errorf("%w: cannot parse as %s", ErrMalformed, kind)
	}
}

// Format returns the canonical lexical form of v.
func Format(v Value) string {
	switch v.kind {
	case Boolean:
		return FormatBoolean(v.b)
	case Byte, Short, Int, Long:
		return FormatLong(v.i)
	case Integer:
		return FormatInteger(v.integer)
	case Decimal:
		return FormatDecimal(v.dec)
	case Float:
		return FormatFloat(float32(v.f))
	case Double:
		return FormatDouble(v.f)
	case QName:
		return FormatQName(v.qname)
	case DateTime, Date, Time:
		return FormatTemporal(v.temporal)
	case Duration:
		return FormatDuration(v.duration)
	case HexBinary:
		return FormatHexBinary(v.bin)
	case Base64Binary:
		return FormatBase64Binary(v.bin)
	case String:
		return v.str
	default:
		return ""
	}
}
