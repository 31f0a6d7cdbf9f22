package lexical

import (
	"errors"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
	"github.com/jacoelho/inst2xsd/internal/value"
)

// classifyOrder is the order in which candidate kinds are tried; the first
// kind that accepts the literal wins. String is the fallback.
var classifyOrder = [...]Kind{
	Boolean, Byte, Short, Int, Long, Integer, Decimal, Float, Double,
	DateTime, Date, Time, Duration, QName,
}

// Classify returns the narrowest kind whose lexical space contains text.
// Empty or blank text classifies as String. QName is chosen only for
// prefixed names whose prefix resolves in ns; binary kinds are never chosen.
func Classify(text string, ns NamespaceContext) Kind {
	k, _ := classify(text, ns)
	return k
}

// ClassifyLenient is Classify that also reports a QName-shaped literal with
// an unbound prefix to sink before widening it to String.
func ClassifyLenient(text string, ns NamespaceContext, sink xsderrors.Sink) Kind {
	k, err := classify(text, ns)
	if err != nil && sink != nil {
		sink.Report(diagnosticFor(err, text))
	}
	return k
}

func classify(text string, ns NamespaceContext) (Kind, error) {
	if value.IsBlank(text) {
		return String, nil
	}
	for _, k := range classifyOrder {
		if k == QName {
			return classifyQName(text, ns)
		}
		if accepts(k, text) {
			return k, nil
		}
	}
	return String, nil
}

func classifyQName(text string, ns NamespaceContext) (Kind, error) {
	_, _, hasPrefix, err := value.SplitQName(value.TrimXMLWhitespaceString(text))
	if err != nil || !hasPrefix {
		return String, nil
	}
	if _, err := ParseQName(text, ns); err != nil {
		if errors.Is(err, ErrUnresolvedPrefix) {
			return String, err
		}
		return String, nil
	}
	return QName, nil
}

func accepts(k Kind, text string) bool {
	var err error
	switch k {
	case Boolean:
		_, err = ParseBoolean(text)
	case Byte:
		_, err = ParseByte(text)
	case Short:
		_, err = ParseShort(text)
	case Int:
		_, err = ParseInt(text)
	case Long:
		_, err = ParseLong(text)
	case Integer:
		_, err = ParseInteger(text)
	case Decimal:
		_, err = ParseDecimal(text)
	case Float:
		_, err = ParseFloat(text)
	case Double:
		_, err = ParseDouble(text)
	case DateTime:
		_, err = ParseDateTime(text)
	case Date:
		_, err = ParseDate(text)
	case Time:
		_, err = ParseTime(text)
	case Duration:
		_, err = ParseDuration(text)
	default:
		_, err = Parse(text, k, nil)
	}
	return err == nil
}
