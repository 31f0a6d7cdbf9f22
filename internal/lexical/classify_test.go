package lexical

import (
	"testing"

	"github.com/stretchr/testify/require"

	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

func TestClassify(t *testing.T) {
	ns := MapContext{"p": "urn:p", "": "urn:default"}
	tests := []struct {
		text string
		want Kind
	}{
		{"", String},
		{"   ", String},
		{"true", Boolean},
		{"0", Boolean},
		{"1", Boolean},
		{"2", Byte},
		{" 127 ", Byte},
		{"-128", Byte},
		{"128", Short},
		{"-32769", Int},
		{"2147483648", Long},
		{"9223372036854775808", Integer},
		{"-9223372036854775809", Integer},
		{"-6.007", Decimal},
		{".5", Decimal},
		{"1e5", Float},
		{"INF", Float},
		{"NaN", Float},
		{"1e39", Double},
		{"1e400", String},
		{"1.5f", String},
		{"2001-10-26T21:32:52", DateTime},
		{"2001-10-26", Date},
		{"21:32:52Z", Time},
		{"P1Y2M", Duration},
		{"p:local", QName},
		{"local", String},
		{"q:local", String},
		{"http://example.com", String},
		{"abc", String},
		{"TRUE", String},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.text, ns), "Classify(%q)", tt.text)
	}
}

func TestClassifyLenientReportsUnresolvedPrefix(t *testing.T) {
	var c xsderrors.Collector
	require.Equal(t, String, ClassifyLenient("q:local", NoNamespaces, &c))
	require.Equal(t, Byte, ClassifyLenient("5", NoNamespaces, &c))
	require.Equal(t, String, ClassifyLenient("a:b:c", NoNamespaces, &c))
	got := c.Diagnostics()
	require.Len(t, got, 1)
	require.Equal(t, string(xsderrors.ErrLexicalUnresolvedPrefix), got[0].Code)
	require.Equal(t, "q:local", got[0].Actual)
}

func TestClassifyMonotonicWidening(t *testing.T) {
	join := func(literals ...string) Kind {
		k := None
		for _, l := range literals {
			k = Join(k, Classify(l, nil))
		}
		return k
	}
	require.Equal(t, Decimal, join("5", "-6.007"))
	require.Equal(t, Boolean, join("true", "false"))
	require.Equal(t, String, join("5", "-6.007", "abc"))
	require.Equal(t, Long, join("1", "40000", "3000000000"))
	require.Equal(t, Double, join("1", "1e39"))
}
