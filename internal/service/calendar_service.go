package service

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/opsdesk/backend/internal/apperror"
	"github.com/opsdesk/backend/pkg/daterange"
)

// DefaultGridCacheSize is the number of month grids kept in memory.
const DefaultGridCacheSize = 256

// Supported calendar years.
const (
	MinCalendarYear = 1900
	MaxCalendarYear = 2100
)

type gridKey struct {
	month daterange.Month
	zone  string
}

// CalendarDay is one rendered cell of a month grid.
type CalendarDay struct {
	Blank   bool   `json:"blank"`
	Date    string `json:"date,omitempty"`
	Day     int    `json:"day,omitempty"`
	Today   bool   `json:"today,omitempty"`
	Weekend bool   `json:"weekend,omitempty"`
}

// CalendarMonth is the response for a month grid request.
type CalendarMonth struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Label string          `json:"label"`
	Today string          `json:"today"`
	Prev  daterange.Month `json:"prev"`
	Next  daterange.Month `json:"next"`
	Weeks [][]CalendarDay `json:"weeks"`
}

// CalendarService serves month grids and preset ranges in one location.
// Grids are memoized; it is safe for concurrent use.
type CalendarService struct {
	loc      *time.Location
	resolver *daterange.Resolver
	grids    *lru.Cache[gridKey, []daterange.Cell]
}

// NewCalendarService creates a CalendarService. now defaults to time.Now.
func NewCalendarService(now func() time.Time, loc *time.Location, cacheSize int) (*CalendarService, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultGridCacheSize
	}
	grids, err := lru.New[gridKey, []daterange.Cell](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create grid cache: %w", err)
	}
	resolver := daterange.NewResolver(now, loc)
	return &CalendarService{loc: resolver.Location, resolver: resolver, grids: grids}, nil
}

// Location returns the calendar's location.
func (s *CalendarService) Location() *time.Location { return s.loc }

// Grid returns the cells of m in loc. The returned slice is a copy.
func (s *CalendarService) Grid(m daterange.Month, loc *time.Location) []daterange.Cell {
	if loc == nil {
		loc = s.loc
	}
	key := gridKey{month: daterange.NewMonth(m.Year, m.Month), zone: loc.String()}
	cells, ok := s.grids.Get(key)
	if !ok {
		cells = key.month.Grid(loc)
		s.grids.Add(key, cells)
	}
	out := make([]daterange.Cell, len(cells))
	copy(out, cells)
	return out
}

// Month renders the grid of the given month.
func (s *CalendarService) Month(year, month int) (*CalendarMonth, error) {
	if year < MinCalendarYear || year > MaxCalendarYear {
		return nil, apperror.ValidationError("year", fmt.Sprintf("must be between %d and %d", MinCalendarYear, MaxCalendarYear))
	}
	if month < 1 || month > 12 {
		return nil, apperror.ValidationError("month", "must be between 1 and 12")
	}

	m := daterange.NewMonth(year, time.Month(month))
	today := s.resolver.Today()
	rows := daterange.Weeks(s.Grid(m, s.loc))

	weeks := make([][]CalendarDay, 0, len(rows))
	for _, row := range rows {
		days := make([]CalendarDay, 0, len(row))
		for _, c := range row {
			if c.IsBlank() {
				days = append(days, CalendarDay{Blank: true})
				continue
			}
			wd := c.Date.Weekday()
			days = append(days, CalendarDay{
				Date:    c.Date.Canonical(),
				Day:     c.Date.Day(),
				Today:   c.Date.Same(today),
				Weekend: wd == time.Saturday || wd == time.Sunday,
			})
		}
		weeks = append(weeks, days)
	}

	return &CalendarMonth{
		Year:  year,
		Month: month,
		Label: m.String(),
		Today: today.Canonical(),
		Prev:  m.Prev(),
		Next:  m.Next(),
		Weeks: weeks,
	}, nil
}

// Presets resolves every preset against today.
func (s *CalendarService) Presets() []daterange.Resolved {
	return s.resolver.All()
}

// Preset resolves a single preset.
func (s *CalendarService) Preset(key string) (*daterange.Resolved, error) {
	p, ok := daterange.LookupPreset(key)
	if !ok {
		return nil, apperror.NotFound("preset")
	}
	r, err := s.resolver.Resolve(key)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	c := r.Canonical()
	return &daterange.Resolved{Key: p.Key, Label: p.Label, StartDate: c.StartDate, EndDate: c.EndDate}, nil
}
