package value

import (
	"math"
	"testing"
)

func TestCanonicalFloat(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want string
	}{
		{0, 64, "0.0E0"},
		{math.Copysign(0, -1), 64, "-0.0E0"},
		{1, 64, "1.0E0"},
		{150, 64, "1.5E2"},
		{-0.001, 64, "-1.0E-3"},
		{1.1, 32, "1.1E0"},
		{math.Inf(1), 64, "INF"},
		{math.Inf(-1), 32, "-INF"},
		{math.NaN(), 64, "NaN"},
	}
	for _, tt := range tests {
		in := tt.in
		if tt.bits == 32 {
			in = float64(float32(in))
		}
		if got := CanonicalFloat(in, tt.bits); got != tt.want {
			t.Errorf("CanonicalFloat(%v, %d) = %q, want %q", tt.in, tt.bits, got, tt.want)
		}
	}
}
