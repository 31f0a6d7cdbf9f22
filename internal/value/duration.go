package value

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jacoelho/inst2xsd/internal/num"
)

// ErrDurationSyntax reports a literal outside the xs:duration lexical space.
var ErrDurationSyntax = errors.New("invalid duration")

var durationLexical = regexp.MustCompile(
	`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// Duration is a parsed xs:duration. Components are kept as written; no
// carrying between fields is performed.
type Duration struct {
	Seconds  num.Dec
	Years    uint64
	Months   uint64
	Days     uint64
	Hours    uint64
	Minutes  uint64
	Negative bool
}

// ParseDuration parses an xs:duration lexical value.
func ParseDuration(lexical []byte) (Duration, error) {
	s := string(TrimXMLWhitespace(lexical))
	m := durationLexical.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrDurationSyntax, s)
	}
	if strings.HasSuffix(s, "T") {
		return Duration{}, fmt.Errorf("%w: %q has a time designator without components", ErrDurationSyntax, s)
	}
	var d Duration
	d.Negative = m[1] != ""
	fields := [...]*uint64{&d.Years, &d.Months, &d.Days, &d.Hours, &d.Minutes}
	seen := false
	for i, dst := range fields {
		group := m[i+2]
		if group == "" {
			continue
		}
		u, err := strconv.ParseUint(group, 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q: %w", ErrDurationSyntax, s, err)
		}
		*dst = u
		seen = true
	}
	if sec := m[7]; sec != "" {
		dec, perr := num.ParseDec([]byte(sec))
		if perr != nil {
			return Duration{}, fmt.Errorf("%w: %q: %w", ErrDurationSyntax, s, perr)
		}
		d.Seconds = dec
		seen = true
	}
	if !seen {
		return Duration{}, fmt.Errorf("%w: %q has no components", ErrDurationSyntax, s)
	}
	if d.isZero() {
		d.Negative = false
	}
	return d, nil
}

func (d Duration) isZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds.Sign == 0
}

// Format returns the lexical form with zero components omitted.
// The zero duration formats as PT0S.
func (d Duration) Format() string {
	if d.isZero() {
		return "PT0S"
	}
	var b strings.Builder
	if d.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	writePart := func(v uint64, designator byte) {
		if v == 0 {
			return
		}
		b.WriteString(strconv.FormatUint(v, 10))
		b.WriteByte(designator)
	}
	writePart(d.Years, 'Y')
	writePart(d.Months, 'M')
	writePart(d.Days, 'D')
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds.Sign != 0 {
		b.WriteByte('T')
		writePart(d.Hours, 'H')
		writePart(d.Minutes, 'M')
		if d.Seconds.Sign != 0 {
			b.Write(d.Seconds.RenderCanonical(nil))
			b.WriteByte('S')
		}
	}
	return b.String()
}

// Equal reports whether two durations have identical components.
func (d Duration) Equal(o Duration) bool {
	return d.Negative == o.Negative &&
		d.Years == o.Years && d.Months == o.Months && d.Days == o.Days &&
		d.Hours == o.Hours && d.Minutes == o.Minutes &&
		d.Seconds.Equal(o.Seconds)
}
