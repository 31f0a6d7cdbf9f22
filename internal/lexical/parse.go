package lexical

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/jacoelho/inst2xsd/internal/num"
	"github.com/jacoelho/inst2xsd/internal/value"
)

// QNameValue is a resolved QName literal. Prefix records the spelling used in
// the document; equality ignores it.
type QNameValue struct {
	Namespace string
	Local     string
	Prefix    string
}

func malformed(kind Kind, text string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s %q", ErrMalformed, kind, text)
	}
	return fmt.Errorf("%w: %s %q: %w", ErrMalformed, kind, text, cause)
}

func collapse(text string) []byte {
	return value.TrimXMLWhitespace([]byte(text))
}

// ParseBoolean accepts exactly 0, 1, true and false.
func ParseBoolean(text string) (bool, error) {
	switch string(collapse(text)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, malformed(Boolean, text, nil)
	}
}

func parseBounded(kind Kind, text string, b num.Bounds) (int64, error) {
	v, perr := num.ParseBounded(collapse(text), b)
	if perr != nil {
		return 0, malformed(kind, text, perr)
	}
	return v, nil
}

// ParseByte parses an xs:byte literal.
func ParseByte(text string) (int8, error) {
	v, err := parseBounded(Byte, text, num.Int8Bounds)
	return int8(v), err
}

// ParseShort parses an xs:short literal.
func ParseShort(text string) (int16, error) {
	v, err := parseBounded(Short, text, num.Int16Bounds)
	return int16(v), err
}

// ParseInt parses an xs:int literal.
func ParseInt(text string) (int32, error) {
	v, err := parseBounded(Int, text, num.Int32Bounds)
	return int32(v), err
}

// ParseLong parses an xs:long literal.
func ParseLong(text string) (int64, error) {
	return parseBounded(Long, text, num.Int64Bounds)
}

// ParseInteger parses an unbounded xs:integer literal.
func ParseInteger(text string) (num.Int, error) {
	v, perr := num.ParseInt(collapse(text))
	if perr != nil {
		return num.Int{}, malformed(Integer, text, perr)
	}
	return v, nil
}

// ParseDecimal parses an xs:decimal literal.
func ParseDecimal(text string) (num.Dec, error) {
	v, perr := num.ParseDec(collapse(text))
	if perr != nil {
		return num.Dec{}, malformed(Decimal, text, perr)
	}
	return v, nil
}

// ParseFloat parses an xs:float literal. Finite literals beyond the float32
// range are rejected.
func ParseFloat(text string) (float32, error) {
	b := collapse(text)
	f, class, perr := num.ParseFloat32(b)
	if perr != nil {
		return 0, malformed(Float, text, perr)
	}
	if class != num.FloatFinite && class != num.FloatNaN && !num.IsSpecialFloat(b) {
		return 0, malformed(Float, text, fmt.Errorf("%w for float", num.ErrRange))
	}
	return f, nil
}

// ParseDouble parses an xs:double literal. Finite literals beyond the float64
// range are rejected.
func ParseDouble(text string) (float64, error) {
	b := collapse(text)
	f, class, perr := num.ParseFloat64(b)
	if perr != nil {
		return 0, malformed(Double, text, perr)
	}
	if class != num.FloatFinite && class != num.FloatNaN && !num.IsSpecialFloat(b) {
		return 0, malformed(Double, text, fmt.Errorf("%w for double", num.ErrRange))
	}
	return f, nil
}

// ParseQName splits text on its first colon and resolves the prefix through ns.
// An unprefixed name takes the default namespace when ns binds one.
func ParseQName(text string, ns NamespaceContext) (QNameValue, error) {
	if ns == nil {
		ns = NoNamespaces
	}
	lexical := string(collapse(text))
	prefix, local, hasPrefix, err := value.SplitQName(lexical)
	if err != nil {
		return QNameValue{}, malformed(QName, text, err)
	}
	uri, ok := ns.LookupNamespace(prefix)
	if hasPrefix && (!ok || uri == "") {
		return QNameValue{}, fmt.Errorf("%w: %q in %q", ErrUnresolvedPrefix, prefix, lexical)
	}
	return QNameValue{Namespace: uri, Local: local, Prefix: prefix}, nil
}

// ParseDateTime parses an xs:dateTime literal.
func ParseDateTime(text string) (value.Temporal, error) {
	v, err := value.ParseDateTime([]byte(text))
	if err != nil {
		return value.Temporal{}, malformed(DateTime, text, err)
	}
	return v, nil
}

// ParseDate parses an xs:date literal.
func ParseDate(text string) (value.Temporal, error) {
	v, err := value.ParseDate([]byte(text))
	if err != nil {
		return value.Temporal{}, malformed(Date, text, err)
	}
	return v, nil
}

// ParseTime parses an xs:time literal.
func ParseTime(text string) (value.Temporal, error) {
	v, err := value.ParseTime([]byte(text))
	if err != nil {
		return value.Temporal{}, malformed(Time, text, err)
	}
	return v, nil
}

// ParseDuration parses an xs:duration literal.
func ParseDuration(text string) (value.Duration, error) {
	v, err := value.ParseDuration([]byte(text))
	if err != nil {
		return value.Duration{}, malformed(Duration, text, err)
	}
	return v, nil
}

// ParseHexBinary decodes an xs:hexBinary literal of either letter case.
func ParseHexBinary(text string) ([]byte, error) {
	b := collapse(text)
	out := make([]byte, hex.DecodedLen(len(b)))
	if _, err := hex.Decode(out, b); err != nil {
		return nil, malformed(HexBinary, text, err)
	}
	return out, nil
}

// ParseBase64Binary decodes an xs:base64Binary literal. Embedded XML
// whitespace is ignored.
func ParseBase64Binary(text string) ([]byte, error) {
	out, err := base64.StdEncoding.Strict().DecodeString(value.RemoveXMLWhitespace(text))
	if err != nil {
		return nil, malformed(Base64Binary, text, err)
	}
	return out, nil
}

// FormatBoolean returns true or false.
func FormatBoolean(v bool) string { return strconv.FormatBool(v) }

// FormatByte returns the canonical decimal form.
func FormatByte(v int8) string { return strconv.FormatInt(int64(v), 10) }

// FormatShort returns the canonical decimal form.
func FormatShort(v int16) string { return strconv.FormatInt(int64(v), 10) }

// FormatInt returns the canonical decimal form.
func FormatInt(v int32) string { return strconv.FormatInt(int64(v), 10) }

// FormatLong returns the canonical decimal form.
func FormatLong(v int64) string { return strconv.FormatInt(v, 10) }

// FormatInteger returns the canonical decimal form.
func FormatInteger(v num.Int) string { return v.String() }

// FormatDecimal drops trailing fractional zeros and a bare decimal point.
func FormatDecimal(v num.Dec) string { return v.String() }

// FormatFloat returns the canonical mantissa/exponent form.
func FormatFloat(v float32) string { return value.CanonicalFloat(float64(v), 32) }

// FormatDouble returns the canonical mantissa/exponent form.
func FormatDouble(v float64) string { return value.CanonicalFloat(v, 64) }

// FormatQName returns prefix:local, or local when the prefix is empty.
func FormatQName(v QNameValue) string {
	if v.Prefix == "" {
		return v.Local
	}
	return v.Prefix + ":" + v.Local
}

// FormatTemporal returns the canonical form of a dateTime, date or time.
func FormatTemporal(v value.Temporal) string { return v.Format() }

// FormatDuration returns the duration with zero components omitted.
func FormatDuration(v value.Duration) string { return v.Format() }

// FormatHexBinary returns upper-case hex digits.
func FormatHexBinary(v []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 0, len(v)*2)
	for _, b := range v {
		out = append(out, digits[b>>4], digits[b&0x0f])
	}
	return string(out)
}

// FormatBase64Binary returns padded standard base64.
func FormatBase64Binary(v []byte) string { return base64.StdEncoding.EncodeToString(v) }
