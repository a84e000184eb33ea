package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsdesk/backend/internal/ui"
	"github.com/opsdesk/backend/pkg/daterange"
	"github.com/opsdesk/backend/pkg/datetime"
)

var (
	calendarStart string
	calendarEnd   string
)

// calendarMonth is the JSON form of a rendered month. Weeks holds canonical
// dates, with "" for padding cells.
type calendarMonth struct {
	Month daterange.Month           `json:"month"`
	Label string                    `json:"label"`
	Weeks [][]string                `json:"weeks"`
	Marks map[string]string         `json:"marks,omitempty"`
	Range *daterange.CanonicalRange `json:"range,omitempty"`
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [year] [month]",
	Short: "Render a month grid",
	Long: `Renders a Sunday-first month grid, highlighting today and an optional range.

Examples:
  rangectl calendar
  rangectl calendar 2024 6
  rangectl calendar 2024 6 --start 2024-06-05 --end 2024-06-10`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := daterange.NewResolver(clock, location)
		today := resolver.Today()
		m := daterange.MonthOf(today)

		if len(args) > 0 {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %q", args[0])
			}
			month := int(m.Month)
			if len(args) > 1 {
				month, err = strconv.Atoi(args[1])
				if err != nil || month < 1 || month > 12 {
					return fmt.Errorf("month must be between 1 and 12: %q", args[1])
				}
			}
			m = daterange.NewMonth(year, time.Month(month))
		}

		var sel daterange.Selection
		if calendarStart != "" || calendarEnd != "" {
			r, err := parseRangeFlags(calendarStart, calendarEnd)
			if err != nil {
				return err
			}
			sel.Set(r)
		}

		cells := m.Grid(location)
		if jsonOutput {
			return outputSuccess(cmd.OutOrStdout(), monthJSON(m, cells, &sel))
		}
		renderMonth(cmd.OutOrStdout(), m, cells, &sel, today)
		return nil
	},
}

func parseRangeFlags(start, end string) (daterange.Range, error) {
	var r daterange.Range
	if start != "" {
		d, err := datetime.ParseCanonical(start, location)
		if err != nil {
			return r, fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
		}
		r.Start = d
	}
	if end != "" {
		d, err := datetime.ParseCanonical(end, location)
		if err != nil {
			return r, fmt.Errorf("--end must be YYYY-MM-DD: %w", err)
		}
		r.End = d
	}
	if r.IsComplete() {
		r = daterange.NewRange(r.Start, r.End)
	}
	return r, nil
}

func monthJSON(m daterange.Month, cells []daterange.Cell, sel *daterange.Selection) calendarMonth {
	out := calendarMonth{Month: m, Label: m.String(), Marks: map[string]string{}}
	for _, week := range daterange.Weeks(cells) {
		row := make([]string, 0, len(week))
		for _, c := range week {
			if c.IsBlank() {
				row = append(row, "")
				continue
			}
			iso := c.Date.Canonical()
			row = append(row, iso)
			if mark := sel.Mark(c.Date); mark != daterange.MarkNone {
				out.Marks[iso] = mark.String()
			}
		}
		out.Weeks = append(out.Weeks, row)
	}
	if r := sel.Range(); !r.IsZero() {
		c := r.Canonical()
		out.Range = &c
	}
	return out
}

func renderMonth(w io.Writer, m daterange.Month, cells []daterange.Cell, sel *daterange.Selection, today datetime.Date) {
	title := m.String()
	pad := (daterange.DaysPerWeek*3 - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w, strings.Repeat(" ", pad)+ui.AccentBold.Render(title))
	fmt.Fprintln(w, ui.Muted.Render(" Su Mo Tu We Th Fr Sa"))

	for _, week := range daterange.Weeks(cells) {
		var b strings.Builder
		for _, c := range week {
			if c.IsBlank() {
				b.WriteString("   ")
				continue
			}
			b.WriteString(" ")
			b.WriteString(styleDay(fmt.Sprintf("%2d", c.Date.Day()), sel.Mark(c.Date), c.Date.Same(today)))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func styleDay(text string, mark daterange.Mark, isToday bool) string {
	switch mark {
	case daterange.MarkEdge:
		text = ui.Edge.Render(text)
	case daterange.MarkInRange, daterange.MarkPreview:
		text = ui.Accent.Render(text)
	}
	if isToday {
		text = ui.Today.Render(text)
	}
	return text
}

func init() {
	calendarCmd.Flags().StringVar(&calendarStart, "start", "", "Highlight a range starting on this date")
	calendarCmd.Flags().StringVar(&calendarEnd, "end", "", "Highlight a range ending on this date")
	rootCmd.AddCommand(calendarCmd)
}
