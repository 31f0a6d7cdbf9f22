package value

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "P1Y2M3DT10H30M", want: "P1Y2M3DT10H30M"},
		{in: "-P120D", want: "-P120D"},
		{in: "PT1.500S", want: "PT1.5S"},
		{in: "P0Y", want: "PT0S"},
		{in: "-PT0S", want: "PT0S"},
		{in: " PT36H ", want: "PT36H"},
		{in: "P", wantErr: true},
		{in: "PT", wantErr: true},
		{in: "P1YT", wantErr: true},
		{in: "1Y", wantErr: true},
		{in: "P-1Y", wantErr: true},
		{in: "P1.5Y", wantErr: true},
		{in: "PT1M2H", wantErr: true},
		{in: "P99999999999999999999Y", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDuration([]byte(tt.in))
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDuration(%q) expected error", tt.in)
			} else if !errors.Is(err, ErrDurationSyntax) {
				t.Errorf("ParseDuration(%q) error %v is not ErrDurationSyntax", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if f := got.Format(); f != tt.want {
			t.Errorf("ParseDuration(%q).Format() = %q, want %q", tt.in, f, tt.want)
		}
		again, err := ParseDuration([]byte(got.Format()))
		if err != nil || !again.Equal(got) {
			t.Errorf("round trip of %q failed: %v", tt.in, err)
		}
	}
}
