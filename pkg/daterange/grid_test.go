package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_Shape(t *testing.T) {
	t.Parallel()

	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := BuildMonthGrid(year, month, time.UTC)
			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			lead := int(first.Weekday())
			days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

			require.Zero(t, len(cells)%DaysPerWeek, "%d-%02d", year, month)
			require.LessOrEqual(t, len(cells), 42)

			for i := 0; i < lead; i++ {
				assert.True(t, cells[i].IsBlank(), "%d-%02d cell %d", year, month, i)
			}
			for i := 0; i < days; i++ {
				cell := cells[lead+i]
				require.Equal(t, CellDay, cell.Kind)
				assert.Equal(t, i+1, cell.Date.Day())
				assert.Equal(t, month, cell.Date.Month())
			}
			for i := lead + days; i < len(cells); i++ {
				assert.True(t, cells[i].IsBlank())
			}
		}
	}
}

func TestBuildMonthGrid_June2024(t *testing.T) {
	t.Parallel()

	// June 1st 2024 is a Saturday.
	cells := BuildMonthGrid(2024, time.June, time.UTC)
	assert.Len(t, cells, 42)
	assert.True(t, cells[5].IsBlank())
	assert.Equal(t, "2024-06-01", cells[6].Date.Canonical())
	assert.Equal(t, "2024-06-30", cells[35].Date.Canonical())
}

func TestBuildMonthGrid_February2015FitsFourWeeks(t *testing.T) {
	t.Parallel()

	// February 2015 starts on a Sunday and has 28 days.
	cells := BuildMonthGrid(2015, time.February, time.UTC)
	assert.Len(t, cells, 28)
	assert.False(t, cells[0].IsBlank())
}

func TestBuildMonthGrid_Overflow(t *testing.T) {
	t.Parallel()

	cells := BuildMonthGrid(2024, 13, time.UTC)
	var firstDay Cell
	for _, c := range cells {
		if !c.IsBlank() {
			firstDay = c
			break
		}
	}
	assert.Equal(t, "2025-01-01", firstDay.Date.Canonical())

	cells = BuildMonthGrid(2024, 0, time.UTC)
	for _, c := range cells {
		if !c.IsBlank() {
			assert.Equal(t, "2023-12-01", c.Date.Canonical())
			break
		}
	}
}

func TestWeeks(t *testing.T) {
	t.Parallel()

	rows := Weeks(BuildMonthGrid(2024, time.June, time.UTC))
	require.Len(t, rows, 6)
	for _, row := range rows {
		assert.Len(t, row, DaysPerWeek)
	}
}

func TestMonthNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Month
		want Month
	}{
		{"december to january", NewMonth(2024, time.December).Next(), Month{Year: 2025, Month: time.January}},
		{"january to december", NewMonth(2025, time.January).Prev(), Month{Year: 2024, Month: time.December}},
		{"add twelve", NewMonth(2024, time.March).Add(12), Month{Year: 2025, Month: time.March}},
		{"normalize 13", NewMonth(2024, 13), Month{Year: 2025, Month: time.January}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "January 2025", NewMonth(2024, time.December).Next().String())
}
