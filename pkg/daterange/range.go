// Package daterange holds the date-range picker logic: month grids, relative
// presets, and the two-click selection state machine. All dates are
// datetime.Date values in the host's local calendar.
package daterange

import (
	"time"

	"github.com/opsdesk/backend/pkg/datetime"
)

// Range is an inclusive pair of dates. Either bound may be the zero Date (null).
// When both are set, Start is never after End.
type Range struct {
	Start datetime.Date `json:"start"`
	End   datetime.Date `json:"end"`
}

// CanonicalRange is the YYYY-MM-DD form exchanged with the host.
type CanonicalRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// NewRange builds a range from two dates in either order.
func NewRange(a, b datetime.Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// SingleDay returns the range covering just d.
func SingleDay(d datetime.Date) Range {
	return Range{Start: d, End: d}
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// IsComplete reports whether both bounds are set.
func (r Range) IsComplete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Contains reports whether d lies within the range, bounds included.
func (r Range) Contains(d datetime.Date) bool {
	if !r.IsComplete() || d.IsZero() {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in a complete range, or 0.
func (r Range) Days() int {
	if !r.IsComplete() {
		return 0
	}
	// Compare as UTC midnights so DST transitions do not skew the count.
	y1, m1, d1 := r.Start.Date()
	y2, m2, d2 := r.End.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Canonical converts the range into its boundary string form.
func (r Range) Canonical() CanonicalRange {
	return CanonicalRange{
		StartDate: r.Start.Canonical(),
		EndDate:   r.End.Canonical(),
	}
}
