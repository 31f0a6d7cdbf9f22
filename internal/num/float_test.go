package num

import (
	"errors"
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bits    int
		class   FloatClass
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "inf", input: "INF", bits: 32, class: FloatPosInf},
		{name: "neg inf", input: "-INF", bits: 64, class: FloatNegInf},
		{name: "nan", input: "NaN", bits: 64, class: FloatNaN},
		{name: "finite", input: "1.25", bits: 32, class: FloatFinite},
		{name: "exponent", input: "-1.5E-3", bits: 64, class: FloatFinite},
		{name: "float overflow", input: "1e39", bits: 32, class: FloatPosInf},
		{name: "fits double", input: "1e39", bits: 64, class: FloatFinite},
		{name: "plus inf invalid", input: "+INF", bits: 32, wantErr: true, errKind: ParseBadChar},
		{name: "bad char", input: "1e", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "lowercase inf", input: "inf", bits: 64, wantErr: true, errKind: ParseBadSuffix},
		{name: "float suffix", input: "1.5f", bits: 32, wantErr: true, errKind: ParseBadSuffix},
		{name: "double suffix", input: "2D", bits: 64, wantErr: true, errKind: ParseBadSuffix},
		{name: "trailing inf", input: "1INF", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "hex float", input: "0x1p-2", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "empty", input: "", bits: 64, wantErr: true, errKind: ParseEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, class, err := ParseFloat([]byte(tc.input), tc.bits)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if class != tc.class {
				t.Fatalf("class = %v, want %v", class, tc.class)
			}
			switch class {
			case FloatNaN:
				if !math.IsNaN(val) {
					t.Fatalf("expected NaN")
				}
			case FloatPosInf:
				if !math.IsInf(val, 1) {
					t.Fatalf("expected +Inf")
				}
			case FloatNegInf:
				if !math.IsInf(val, -1) {
					t.Fatalf("expected -Inf")
				}
			}
		})
	}
}

func TestParseFloatOffsets(t *testing.T) {
	tests := []struct {
		input  string
		kind   ParseErrKind
		offset int
	}{
		{input: "1.5x", kind: ParseBadChar, offset: 3},
		{input: "1e+", kind: ParseBadChar, offset: 3},
		{input: "2e1z", kind: ParseBadChar, offset: 3},
		{input: "-.", kind: ParseNoDigits, offset: 2},
		{input: "7d", kind: ParseBadSuffix, offset: 1},
	}
	for _, tc := range tests {
		_, _, err := ParseFloat64([]byte(tc.input))
		if err == nil {
			t.Fatalf("ParseFloat64(%q) expected error", tc.input)
		}
		if err.Kind != tc.kind || err.Offset != tc.offset {
			t.Fatalf("ParseFloat64(%q) = %v/%d, want %v/%d", tc.input, err.Kind, err.Offset, tc.kind, tc.offset)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("ParseFloat64(%q) error does not match ErrSyntax", tc.input)
		}
	}
}

func TestIsSpecialFloat(t *testing.T) {
	for _, s := range []string{"INF", "-INF", "NaN"} {
		if !IsSpecialFloat([]byte(s)) {
			t.Fatalf("IsSpecialFloat(%q) = false", s)
		}
	}
	for _, s := range []string{"+INF", "nan", "1"} {
		if IsSpecialFloat([]byte(s)) {
			t.Fatalf("IsSpecialFloat(%q) = true", s)
		}
	}
}
