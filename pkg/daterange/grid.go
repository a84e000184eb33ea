package daterange

import (
	"time"

	"github.com/opsdesk/backend/pkg/datetime"
)

// CellKind tags a calendar cell.
type CellKind int

const (
	// CellBlank pads the grid before the 1st and after the last day.
	CellBlank CellKind = iota
	// CellDay holds one day of the month.
	CellDay
)

func (k CellKind) String() string {
	if k == CellDay {
		return "day"
	}
	return "blank"
}

// Cell is a single slot of a month grid. Date is zero for blank cells.
type Cell struct {
	Kind CellKind
	Date datetime.Date
}

// IsBlank reports whether the cell is padding.
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank
}

// DaysPerWeek is the number of columns in a month grid.
const DaysPerWeek = 7

// BuildMonthGrid returns the cells of a Sunday-first month grid. Month values
// outside 1..12 roll over into neighbouring years the way time.Date does. The
// grid opens with one blank per weekday before the 1st and is padded to whole
// weeks, so its length is a multiple of seven and at most 42.
func BuildMonthGrid(year int, month time.Month, loc *time.Location) []Cell {
	first := datetime.NewDate(year, month, 1, loc)
	// Day 0 of the following month is the last day of this one.
	last := datetime.NewDate(first.Year(), first.Month()+1, 0, loc).Day()

	lead := int(first.Weekday())
	size := lead + last
	if rem := size % DaysPerWeek; rem != 0 {
		size += DaysPerWeek - rem
	}

	cells := make([]Cell, 0, size)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Kind: CellBlank})
	}
	for day := 1; day <= last; day++ {
		cells = append(cells, Cell{
			Kind: CellDay,
			Date: datetime.NewDate(first.Year(), first.Month(), day, loc),
		})
	}
	for len(cells) < size {
		cells = append(cells, Cell{Kind: CellBlank})
	}
	return cells
}

// Weeks splits a grid into rows of seven cells.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for i := 0; i < len(cells); i += DaysPerWeek {
		end := i + DaysPerWeek
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[i:end])
	}
	return rows
}

// Month identifies a calendar month. It is always normalized (Month in 1..12).
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing d.
func MonthOf(d datetime.Date) Month {
	return NewMonth(d.Year(), d.Month())
}

// NewMonth normalizes year and month, so NewMonth(2024, 13) is January 2025.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add moves the month by n (negative to go back).
func (m Month) Add(n int) Month {
	return NewMonth(m.Year, m.Month+time.Month(n))
}

// Next returns the following month.
func (m Month) Next() Month { return m.Add(1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return m.Add(-1) }

// Grid builds the month grid in loc.
func (m Month) Grid(loc *time.Location) []Cell {
	return BuildMonthGrid(m.Year, m.Month, loc)
}

func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
