package value

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrTemporalSyntax reports a date, time or dateTime literal that does not
// match its lexical space.
var ErrTemporalSyntax = errors.New("invalid temporal value")

// TemporalKind identifies which xs temporal type a Temporal holds.
type TemporalKind uint8

const (
	TemporalDateTime TemporalKind = iota
	TemporalDate
	TemporalTime
)

// String returns the XML Schema local name of the kind.
func (k TemporalKind) String() string {
	switch k {
	case TemporalDate:
		return "date"
	case TemporalTime:
		return "time"
	default:
		return "dateTime"
	}
}

// Temporal is a parsed xs:dateTime, xs:date or xs:time value.
// Time carries the value in its own offset; when HasTZ is false the value is
// stored in UTC and no timezone is rendered.
type Temporal struct {
	Time  time.Time
	Kind  TemporalKind
	HasTZ bool
}

// ParseDateTime parses an xs:dateTime lexical value.
func ParseDateTime(lexical []byte) (Temporal, error) {
	s := string(TrimXMLWhitespace(lexical))
	main, tz, err := cutTimezone(s)
	if err != nil {
		return Temporal{}, err
	}
	datePart, timePart, ok := strings.Cut(main, "T")
	if !ok {
		return Temporal{}, fmt.Errorf("%w: dateTime %q has no time part", ErrTemporalSyntax, s)
	}
	d, err := parseCalendarDate(datePart)
	if err != nil {
		return Temporal{}, fmt.Errorf("%w: dateTime %q: %w", ErrTemporalSyntax, s, err)
	}
	c, err := parseClock(timePart)
	if err != nil {
		return Temporal{}, fmt.Errorf("%w: dateTime %q: %w", ErrTemporalSyntax, s, err)
	}
	t := c.on(d, tz.location())
	if y := t.Year(); y < 1 || y > 9999 {
		return Temporal{}, fmt.Errorf("%w: dateTime %q: year out of range", ErrTemporalSyntax, s)
	}
	return Temporal{Time: t, Kind: TemporalDateTime, HasTZ: tz.present}, nil
}

// ParseDate parses an xs:date lexical value.
func ParseDate(lexical []byte) (Temporal, error) {
	s := string(TrimXMLWhitespace(lexical))
	main, tz, err := cutTimezone(s)
	if err != nil {
		return Temporal{}, err
	}
	d, err := parseCalendarDate(main)
	if err != nil {
		return Temporal{}, fmt.Errorf("%w: date %q: %w", ErrTemporalSyntax, s, err)
	}
	t := time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, tz.location())
	return Temporal{Time: t, Kind: TemporalDate, HasTZ: tz.present}, nil
}

// ParseTime parses an xs:time lexical value.
// 24:00:00 is accepted and stored as midnight.
func ParseTime(lexical []byte) (Temporal, error) {
	s := string(TrimXMLWhitespace(lexical))
	main, tz, err := cutTimezone(s)
	if err != nil {
		return Temporal{}, err
	}
	c, err := parseClock(main)
	if err != nil {
		return Temporal{}, fmt.Errorf("%w: time %q: %w", ErrTemporalSyntax, s, err)
	}
	t := c.on(calendarDate{year: 2000, month: 1, day: 1}, tz.location())
	// time values carry no date; a rollover from 24:00:00 or a leap second
	// is folded back onto the reference day.
	t = time.Date(2000, 1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return Temporal{Time: t, Kind: TemporalTime, HasTZ: tz.present}, nil
}

// Format returns the canonical lexical form of the value.
func (v Temporal) Format() string {
	year, month, day := v.Time.Date()
	hour, minute, second := v.Time.Clock()
	var b strings.Builder
	switch v.Kind {
	case TemporalDate:
		fmt.Fprintf(&b, "%04d-%02d-%02d", year, int(month), day)
	case TemporalTime:
		fmt.Fprintf(&b, "%02d:%02d:%02d", hour, minute, second)
		b.WriteString(formatFraction(v.Time.Nanosecond()))
	default:
		fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d", year, int(month), day, hour, minute, second)
		b.WriteString(formatFraction(v.Time.Nanosecond()))
	}
	if v.HasTZ {
		b.WriteString(formatOffset(v.Time))
	}
	return b.String()
}

// Equal reports whether two values have the same kind, instant and timezone presence.
func (v Temporal) Equal(o Temporal) bool {
	if v.Kind != o.Kind || v.HasTZ != o.HasTZ {
		return false
	}
	_, a := v.Time.Zone()
	_, b := o.Time.Zone()
	return a == b && v.Time.Equal(o.Time)
}

type calendarDate struct {
	year, month, day int
}

func parseCalendarDate(s string) (calendarDate, error) {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		return calendarDate{}, fmt.Errorf("signed year")
	}
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return calendarDate{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	year, ok1 := fixedDigits(s[0:4])
	month, ok2 := fixedDigits(s[5:7])
	day, ok3 := fixedDigits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return calendarDate{}, fmt.Errorf("non-digit in date")
	}
	if year == 0 {
		return calendarDate{}, fmt.Errorf("year 0000")
	}
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return calendarDate{}, fmt.Errorf("day out of range")
	}
	return calendarDate{year: year, month: month, day: day}, nil
}

type clock struct {
	hour, minute, second int
	nanos                int
	endOfDay             bool
	leap                 bool
}

func parseClock(s string) (clock, error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return clock{}, fmt.Errorf("time must be hh:mm:ss")
	}
	hour, ok1 := fixedDigits(s[0:2])
	minute, ok2 := fixedDigits(s[3:5])
	second, ok3 := fixedDigits(s[6:8])
	if !ok1 || !ok2 || !ok3 {
		return clock{}, fmt.Errorf("non-digit in time")
	}
	c := clock{hour: hour, minute: minute, second: second}
	if rest := s[8:]; rest != "" {
		frac := rest[1:]
		if rest[0] != '.' || frac == "" || len(frac) > 9 {
			return clock{}, fmt.Errorf("bad fractional seconds")
		}
		n, ok := fixedDigits(frac)
		if !ok {
			return clock{}, fmt.Errorf("non-digit in fractional seconds")
		}
		for range 9 - len(frac) {
			n *= 10
		}
		c.nanos = n
	}
	switch {
	case hour == 24:
		if minute != 0 || second != 0 || c.nanos != 0 {
			return clock{}, fmt.Errorf("24:00:00 is the only time with hour 24")
		}
		c.hour = 0
		c.endOfDay = true
	case hour > 23 || minute > 59 || second > 60:
		return clock{}, fmt.Errorf("time out of range")
	case second == 60:
		c.second = 59
		c.leap = true
	}
	return c, nil
}

func (c clock) on(d calendarDate, loc *time.Location) time.Time {
	t := time.Date(d.year, time.Month(d.month), d.day, c.hour, c.minute, c.second, c.nanos, loc)
	if c.leap {
		t = t.Add(time.Second)
	}
	if c.endOfDay {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

type zone struct {
	offset  int
	present bool
}

func (z zone) location() *time.Location {
	if !z.present || z.offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", z.offset)
}

// cutTimezone splits a trailing Z or ±hh:mm from s.
func cutTimezone(s string) (string, zone, error) {
	if s == "" {
		return "", zone{}, fmt.Errorf("%w: empty string", ErrTemporalSyntax)
	}
	if s[len(s)-1] == 'Z' {
		return s[:len(s)-1], zone{present: true}, nil
	}
	if len(s) < 6 {
		return s, zone{}, nil
	}
	tz := s[len(s)-6:]
	if (tz[0] != '+' && tz[0] != '-') || tz[3] != ':' {
		return s, zone{}, nil
	}
	hh, ok1 := fixedDigits(tz[1:3])
	mm, ok2 := fixedDigits(tz[4:6])
	if !ok1 || !ok2 || hh > 14 || mm > 59 || (hh == 14 && mm != 0) {
		return "", zone{}, fmt.Errorf("%w: timezone %q out of range", ErrTemporalSyntax, tz)
	}
	offset := hh*3600 + mm*60
	if tz[0] == '-' {
		offset = -offset
	}
	return s[:len(s)-6], zone{offset: offset, present: true}, nil
}

func fixedDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func formatFraction(nanos int) string {
	if nanos == 0 {
		return ""
	}
	frac := fmt.Sprintf("%09d", nanos)
	return "." + strings.TrimRight(frac, "0")
}

func formatOffset(t time.Time) string {
	_, offset := t.Zone()
	if offset == 0 {
		return "Z"
	}
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
