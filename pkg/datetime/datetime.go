// Package datetime provides date-only values in the host's local calendar.
// A Date is always built from explicit (year, month, day) components at local
// midnight so that a day chosen as "June 5" never becomes "June 4" after a UTC
// round-trip.
package datetime

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Standard date formats used throughout the application.
const (
	// DateFormat is the canonical date-only format (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// DisplayDateFormat is for human-readable dates.
	DisplayDateFormat = "Jan 2, 2006"
)

// Date represents a date-only value held at midnight of its location.
// The zero Date stands for "no date" and serializes to JSON null.
type Date struct {
	time.Time
}

// NewDate creates a Date at local midnight in loc. A nil loc means time.Local.
// Out-of-range month and day values normalize the way time.Date does.
func NewDate(year int, month time.Month, day int, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return Date{time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) Date {
	return FromTime(now, loc)
}

// FromTime reduces t to its calendar date as seen in loc.
func FromTime(t time.Time, loc *time.Location) Date {
	if t.IsZero() {
		return Date{}
	}
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d, loc)
}

// ToCanonical formats t as YYYY-MM-DD using t's own year, month and day.
// It never converts to UTC first.
func ToCanonical(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// FromCanonical rebuilds a date from a YYYY-MM-DD (or YYYY-MM-DDTHH:MM...) string
// by splitting on '-' and 'T' and constructing the local date explicitly.
// Input is trusted: malformed fields read as zero and normalize like time.Date.
func FromCanonical(s string, loc *time.Location) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == 'T' })
	fields := [3]int{}
	for i := 0; i < len(fields) && i < len(parts); i++ {
		fields[i], _ = strconv.Atoi(parts[i])
	}
	return NewDate(fields[0], time.Month(fields[1]), fields[2], loc)
}

// FromCanonicalOrDate normalizes a host-supplied value into a local-midnight Date.
func FromCanonicalOrDate(in Input, loc *time.Location) Date {
	switch {
	case !in.set:
		return Date{}
	case in.text != "":
		return FromCanonical(in.text, loc)
	default:
		return FromTime(in.t, loc)
	}
}

// ParseCanonical strictly parses a YYYY-MM-DD string into a Date in loc.
func ParseCanonical(s string, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), loc)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// Canonical returns the date as YYYY-MM-DD, or "" for the zero Date.
func (d Date) Canonical() string {
	if d.IsZero() {
		return ""
	}
	return ToCanonical(d.Time)
}

// Display returns the date in DisplayDateFormat, or "" for the zero Date.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DisplayDateFormat)
}

// Same reports whether d and other fall on the same calendar day.
func (d Date) Same(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Before reports whether d is an earlier calendar day than other.
// The zero Date sorts before every other date.
func (d Date) Before(other Date) bool {
	if d.IsZero() || other.IsZero() {
		return d.IsZero() && !other.IsZero()
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// AddDays moves d by n calendar days, keeping local midnight across DST changes.
func (d Date) AddDays(n int) Date {
	y, m, day := d.Date()
	return NewDate(y, m, day+n, d.Location())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Canonical())
}

// UnmarshalJSON implements json.Unmarshaler. The date is rebuilt in time.Local;
// callers working in another zone should use FromCanonical.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	parsed, err := ParseCanonical(s, time.Local)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return d.Canonical()
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d Date) Date {
	return NewDate(d.Year(), d.Month(), 1, d.Location())
}

// EndOfMonth returns the last day of d's month ("day 0" of the next month).
func EndOfMonth(d Date) Date {
	return NewDate(d.Year(), d.Month()+1, 0, d.Location())
}

// StartOfYear returns January 1st of d's year.
func StartOfYear(d Date) Date {
	return NewDate(d.Year(), time.January, 1, d.Location())
}

// EndOfYear returns December 31st of d's year.
func EndOfYear(d Date) Date {
	return NewDate(d.Year(), time.December, 31, d.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
