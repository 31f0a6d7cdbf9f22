package lexical

// Kind is an XML Schema builtin simple type that inference can assign to a
// literal. Boolean through Double form a widening chain; the remaining kinds
// below String are incomparable leaves. None is the identity of Join and String
// absorbs everything.
type Kind uint8

const (
	None Kind = iota
	Boolean
	Byte
	Short
	Int
	Long
	Integer
	Decimal
	Float
	Double
	QName
	DateTime
	Date
	Time
	Duration
	HexBinary
	Base64Binary
	String
)

var kindNames = [...]string{
	None:         "none",
	Boolean:      "boolean",
	Byte:         "byte",
	Short:        "short",
	Int:          "int",
	Long:         "long",
	Integer:      "integer",
	Decimal:      "decimal",
	Float:        "float",
	Double:       "double",
	QName:        "QName",
	DateTime:     "dateTime",
	Date:         "date",
	Time:         "time",
	Duration:     "duration",
	HexBinary:    "hexBinary",
	Base64Binary: "base64Binary",
	String:       "string",
}

// String returns the XML Schema local name of the builtin type.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every concrete kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(String))
	for k := Boolean; k <= String; k++ {
		out = append(out, k)
	}
	return out
}

// KindByName returns the kind whose XML Schema local name is name.
func KindByName(name string) (Kind, bool) {
	for k := Boolean; k <= String; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return None, false
}

// Ordered reports whether k is on the Boolean..Double widening chain.
func (k Kind) Ordered() bool {
	return k >= Boolean && k <= Double
}

// Integral reports whether k is one of the integer kinds.
func (k Kind) Integral() bool {
	return k >= Byte && k <= Integer
}

// Numeric reports whether k is an integer, decimal or floating kind.
func (k Kind) Numeric() bool {
	return k >= Byte && k <= Double
}

// Join returns the least kind that admits every literal of a and b.
func Join(a, b Kind) Kind {
	switch {
	case a == b:
		return a
	case a == None:
		return b
	case b == None:
		return a
	case a == String || b == String:
		return String
	case a.Ordered() && b.Ordered():
		return max(a, b)
	default:
		return String
	}
}

// Less reports whether a widens to b, meaning a != b and Join(a, b) == b.
func Less(a, b Kind) bool {
	return a != b && Join(a, b) == b
}
