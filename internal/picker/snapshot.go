package picker

import (
	"github.com/opsdesk/backend/pkg/daterange"
)

// CellView is one rendered grid cell.
type CellView struct {
	Blank  bool           `json:"blank"`
	Date   string         `json:"date,omitempty"`
	Day    int            `json:"day,omitempty"`
	Mark   daterange.Mark `json:"mark"`
	Today  bool           `json:"today,omitempty"`
	Target string         `json:"target,omitempty"`
}

// Snapshot is the render model of a picker.
type Snapshot struct {
	ID          string          `json:"id"`
	Placeholder string          `json:"placeholder"`
	Label       string          `json:"label"`
	Open        bool            `json:"open"`
	Phase       daterange.Phase `json:"phase"`
	StartDate   string          `json:"startDate,omitempty"`
	EndDate     string          `json:"endDate,omitempty"`
	HoverDate   string          `json:"hoverDate,omitempty"`
	Month       daterange.Month `json:"month"`
	Weeks       [][]CellView    `json:"weeks"`
}

// Snapshot renders the picker's current state.
func (p *Picker) Snapshot() Snapshot {
	today := p.resolver.Today()
	r := p.selection.Range()

	rows := daterange.Weeks(p.Grid())
	weeks := make([][]CellView, 0, len(rows))
	for _, row := range rows {
		views := make([]CellView, 0, len(row))
		for _, c := range row {
			if c.IsBlank() {
				views = append(views, CellView{Blank: true})
				continue
			}
			views = append(views, CellView{
				Date:   c.Date.Canonical(),
				Day:    c.Date.Day(),
				Mark:   p.selection.Mark(c.Date),
				Today:  c.Date.Same(today),
				Target: p.CellTarget(c.Date),
			})
		}
		weeks = append(weeks, views)
	}

	return Snapshot{
		ID:          p.id,
		Placeholder: p.placeholder,
		Label:       p.Label(),
		Open:        p.open,
		Phase:       p.selection.Phase(),
		StartDate:   r.Start.Canonical(),
		EndDate:     r.End.Canonical(),
		HoverDate:   p.selection.Hovered().Canonical(),
		Month:       p.view,
		Weeks:       weeks,
	}
}
