package num

import "testing"

func TestParseDecCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "1.500", want: "1.5"},
		{input: "2.000", want: "2"},
		{input: "2.", want: "2"},
		{input: ".5", want: "0.5"},
		{input: "-0.050", want: "-0.05"},
		{input: "+0010.10", want: "10.1"},
		{input: "100", want: "100"},
		{input: "-0.000", want: "0"},
		{input: "-6.007", want: "-6.007"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDec([]byte(tc.input))
			if err != nil {
				t.Fatalf("ParseDec(%q) error = %v", tc.input, err)
			}
			if got := d.String(); got != tc.want {
				t.Fatalf("ParseDec(%q).String() = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDecErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ParseErrKind
	}{
		{input: "", kind: ParseEmpty},
		{input: "-", kind: ParseNoDigits},
		{input: ".", kind: ParseNoDigits},
		{input: "1.2.3", kind: ParseMultipleDots},
		{input: "1-2", kind: ParseMultipleSigns},
		{input: "+-1", kind: ParseMultipleSigns},
		{input: "1e5", kind: ParseBadChar},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseDec([]byte(tc.input))
			if err == nil {
				t.Fatalf("ParseDec(%q) expected error", tc.input)
			}
			if err.Kind != tc.kind {
				t.Fatalf("ParseDec(%q) kind = %v, want %v", tc.input, err.Kind, tc.kind)
			}
		})
	}
}

func TestDecEqual(t *testing.T) {
	a, _ := ParseDec([]byte("1.50"))
	b, _ := ParseDec([]byte("01.5"))
	if !a.Equal(b) {
		t.Fatalf("expected 1.50 == 01.5")
	}
	c, _ := ParseDec([]byte("1.05"))
	if a.Equal(c) {
		t.Fatalf("expected 1.50 != 1.05")
	}
	z1, _ := ParseDec([]byte("0.0"))
	z2, _ := ParseDec([]byte("-0"))
	if !z1.Equal(z2) {
		t.Fatalf("expected zeros to be equal")
	}
}
