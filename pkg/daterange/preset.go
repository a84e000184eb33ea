package daterange

import (
	"errors"
	"time"

	"github.com/opsdesk/backend/pkg/datetime"
)

// ErrUnknownPreset is returned when a preset key is not recognised.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named range relative to today. Resolve is a pure function of
// the given date.
type Preset struct {
	Key     string
	Label   string
	resolve func(today datetime.Date) Range
}

// Resolve computes the preset's range for today.
func (p Preset) Resolve(today datetime.Date) Range {
	return p.resolve(today)
}

// Preset keys in display order.
const (
	PresetToday       = "today"
	PresetYesterday   = "yesterday"
	PresetLast7Days   = "last_7_days"
	PresetLast30Days  = "last_30_days"
	PresetLast90Days  = "last_90_days"
	PresetThisWeek    = "this_week"
	PresetLastWeek    = "last_week"
	PresetThisMonth   = "this_month"
	PresetLastMonth   = "last_month"
	PresetThisQuarter = "this_quarter"
	PresetLastQuarter = "last_quarter"
	PresetThisYear    = "this_year"
	PresetLastYear    = "last_year"
)

var builtinPresets = []Preset{
	{Key: PresetToday, Label: "Today", resolve: func(today datetime.Date) Range {
		return SingleDay(today)
	}},
	{Key: PresetYesterday, Label: "Yesterday", resolve: func(today datetime.Date) Range {
		return SingleDay(today.AddDays(-1))
	}},
	{Key: PresetLast7Days, Label: "Last 7 days", resolve: lastDays(7)},
	{Key: PresetLast30Days, Label: "Last 30 days", resolve: lastDays(30)},
	{Key: PresetLast90Days, Label: "Last 90 days", resolve: lastDays(90)},
	{Key: PresetThisWeek, Label: "This week", resolve: func(today datetime.Date) Range {
		return Range{Start: startOfWeek(today), End: today}
	}},
	{Key: PresetLastWeek, Label: "Last week", resolve: func(today datetime.Date) Range {
		start := startOfWeek(today).AddDays(-7)
		return Range{Start: start, End: start.AddDays(6)}
	}},
	{Key: PresetThisMonth, Label: "This month", resolve: func(today datetime.Date) Range {
		return monthRange(today.Year(), today.Month(), today.Location())
	}},
	{Key: PresetLastMonth, Label: "Last month", resolve: func(today datetime.Date) Range {
		return monthRange(today.Year(), today.Month()-1, today.Location())
	}},
	{Key: PresetThisQuarter, Label: "This quarter", resolve: func(today datetime.Date) Range {
		return quarterRange(today.Year(), quarterOf(today.Month()), today.Location())
	}},
	{Key: PresetLastQuarter, Label: "Last quarter", resolve: func(today datetime.Date) Range {
		year, q := today.Year(), quarterOf(today.Month())-1
		if q < 0 {
			year, q = year-1, 3
		}
		return quarterRange(year, q, today.Location())
	}},
	{Key: PresetThisYear, Label: "This year", resolve: func(today datetime.Date) Range {
		return Range{Start: datetime.StartOfYear(today), End: datetime.EndOfYear(today)}
	}},
	{Key: PresetLastYear, Label: "Last year", resolve: func(today datetime.Date) Range {
		prev := datetime.NewDate(today.Year()-1, time.January, 1, today.Location())
		return Range{Start: prev, End: datetime.EndOfYear(prev)}
	}},
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(builtinPresets))
	copy(out, builtinPresets)
	return out
}

// LookupPreset finds a built-in preset by key.
func LookupPreset(key string) (Preset, bool) {
	for _, p := range builtinPresets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// lastDays spans today and the n days before it (n+1 calendar days).
func lastDays(n int) func(datetime.Date) Range {
	return func(today datetime.Date) Range {
		return Range{Start: today.AddDays(-n), End: today}
	}
}

func startOfWeek(d datetime.Date) datetime.Date {
	return d.AddDays(-int(d.Weekday()))
}

func monthRange(year int, month time.Month, loc *time.Location) Range {
	first := datetime.NewDate(year, month, 1, loc)
	return Range{Start: first, End: datetime.EndOfMonth(first)}
}

// quarterOf returns 0..3.
func quarterOf(m time.Month) int {
	return (int(m) - 1) / 3
}

func quarterRange(year, q int, loc *time.Location) Range {
	first := time.Month(q*3 + 1)
	return Range{
		Start: datetime.NewDate(year, first, 1, loc),
		End:   datetime.NewDate(year, first+3, 0, loc),
	}
}

// Resolved is a preset evaluated for a particular day.
type Resolved struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Resolver evaluates presets against a clock in the host's local calendar.
type Resolver struct {
	Now      func() time.Time
	Location *time.Location
}

// NewResolver returns a Resolver; nil arguments default to time.Now and time.Local.
func NewResolver(now func() time.Time, loc *time.Location) *Resolver {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{Now: now, Location: loc}
}

// Today returns the current local date.
func (r *Resolver) Today() datetime.Date {
	return datetime.Today(r.Now(), r.Location)
}

// Resolve evaluates the preset named key.
func (r *Resolver) Resolve(key string) (Range, error) {
	p, ok := LookupPreset(key)
	if !ok {
		return Range{}, ErrUnknownPreset
	}
	return p.Resolve(r.Today()), nil
}

// All evaluates every built-in preset against a single reading of the clock.
func (r *Resolver) All() []Resolved {
	today := r.Today()
	out := make([]Resolved, 0, len(builtinPresets))
	for _, p := range builtinPresets {
		c := p.Resolve(today).Canonical()
		out = append(out, Resolved{
			Key:       p.Key,
			Label:     p.Label,
			StartDate: c.StartDate,
			EndDate:   c.EndDate,
		})
	}
	return out
}
