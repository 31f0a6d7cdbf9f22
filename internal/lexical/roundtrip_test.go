package lexical

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"
	"time"

	"github.com/jacoelho/inst2xsd/internal/num"
	"github.com/jacoelho/inst2xsd/internal/value"
)

func roundTrips(t *testing.T, v Value, ns NamespaceContext) bool {
	t.Helper()
	text := Format(v)
	got, err := Parse(text, v.Kind(), ns)
	if err != nil {
		t.Logf("Parse(%q, %s): %v", text, v.Kind(), err)
		return false
	}
	if !got.Equal(v) {
		t.Logf("Parse(Format(%v)) = %v", v, got)
		return false
	}
	return true
}

func TestRoundTripQuick(t *testing.T) {
	checks := map[string]any{
		"boolean": func(b bool) bool { return roundTrips(t, BooleanValue(b), nil) },
		"byte":    func(n int8) bool { return roundTrips(t, ByteValue(n), nil) },
		"short":   func(n int16) bool { return roundTrips(t, ShortValue(n), nil) },
		"int":     func(n int32) bool { return roundTrips(t, IntValue(n), nil) },
		"long":    func(n int64) bool { return roundTrips(t, LongValue(n), nil) },
		"integer": func(n int64) bool { return roundTrips(t, IntegerValue(num.FromInt64(n)), nil) },
		"float":   func(f float32) bool { return roundTrips(t, FloatValue(f), nil) },
		"double":  func(f float64) bool { return roundTrips(t, DoubleValue(f), nil) },
		"decimal": func(n int64, frac uint32) bool {
			s := strconv.FormatInt(n, 10) + "." + strconv.FormatUint(uint64(frac), 10)
			d, err := ParseDecimal(s)
			if err != nil {
				t.Logf("ParseDecimal(%q): %v", s, err)
				return false
			}
			return roundTrips(t, DecimalValue(d), nil)
		},
		"hexBinary":    func(b []byte) bool { return roundTrips(t, HexBinaryValue(b), nil) },
		"base64Binary": func(b []byte) bool { return roundTrips(t, Base64BinaryValue(b), nil) },
		"string":       func(s string) bool { return roundTrips(t, StringValue(s), nil) },
		"dateTime": func(sec int64, nanos uint32, offsetMinutes int16) bool {
			loc := time.UTC
			if off := int(offsetMinutes) % (14 * 60); off != 0 {
				loc = time.FixedZone("", off*60)
			}
			// keep within years 1970..9970
			sec = sec % (8000 * 365 * 24 * 3600)
			if sec < 0 {
				sec = -sec
			}
			tm := time.Unix(sec, int64(nanos%1e9)).In(loc)
			v := TemporalValue(value.Temporal{Time: tm, Kind: value.TemporalDateTime, HasTZ: true})
			return roundTrips(t, v, nil)
		},
		"duration": func(y, mo, d, h, mi uint16, sec uint32) bool {
			text := "P" + strconv.Itoa(int(y)) + "Y" + strconv.Itoa(int(mo)) + "M" + strconv.Itoa(int(d)) +
				"DT" + strconv.Itoa(int(h)) + "H" + strconv.Itoa(int(mi)) + "M" + strconv.Itoa(int(sec)) + ".25S"
			dur, err := ParseDuration(text)
			if err != nil {
				t.Logf("ParseDuration(%q): %v", text, err)
				return false
			}
			return roundTrips(t, DurationValue(dur), nil)
		},
	}
	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			if err := quick.Check(fn, nil); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestRoundTripFixed(t *testing.T) {
	ns := MapContext{"p": "urn:p"}
	values := []Value{
		IntValue(math.MinInt32),
		IntValue(math.MaxInt32),
		LongValue(math.MinInt64),
		LongValue(math.MaxInt64),
		FloatValue(float32(math.Inf(-1))),
		DoubleValue(math.NaN()),
		DoubleValue(math.Copysign(0, -1)),
		QNameOf(QNameValue{Namespace: "urn:p", Local: "x", Prefix: "p"}),
		StringValue(""),
	}
	for _, v := range values {
		if !roundTrips(t, v, ns) {
			t.Errorf("round trip failed for %v", v)
		}
	}
	for _, text := range []string{"2001-10-26", "13:20:00-05:00", "2001-10-26T21:32:52.5Z"} {
		k := Classify(text, nil)
		v, err := Parse(text, k, nil)
		if err != nil {
			t.Fatalf("Parse(%q, %s): %v", text, k, err)
		}
		if !roundTrips(t, v, nil) {
			t.Errorf("round trip failed for %q", text)
		}
	}
}
