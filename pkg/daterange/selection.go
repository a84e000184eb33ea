package daterange

import (
	"fmt"

	"github.com/opsdesk/backend/pkg/datetime"
)

// Phase is the step reached in a two-click selection.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseStartPicked
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseStartPicked:
		return "start_picked"
	case PhaseComplete:
		return "complete"
	default:
		return "empty"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	for _, v := range []Phase{PhaseEmpty, PhaseStartPicked, PhaseComplete} {
		if v.String() == string(text) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Mark is the highlight state of a day cell.
type Mark int

const (
	MarkNone Mark = iota
	// MarkEdge is a committed start or end date.
	MarkEdge
	// MarkInRange lies strictly inside a committed range.
	MarkInRange
	// MarkPreview lies between the picked start and the hovered date.
	MarkPreview
)

func (m Mark) String() string {
	switch m {
	case MarkEdge:
		return "edge"
	case MarkInRange:
		return "in_range"
	case MarkPreview:
		return "preview"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mark) UnmarshalText(text []byte) error {
	for _, v := range []Mark{MarkNone, MarkEdge, MarkInRange, MarkPreview} {
		if v.String() == string(text) {
			*m = v
			return nil
		}
	}
	return fmt.Errorf("unknown mark %q", text)
}

// Selection tracks a two-click range selection. The zero value is empty and
// ready to use. It is not safe for concurrent use.
type Selection struct {
	phase Phase
	start datetime.Date
	end   datetime.Date
	hover datetime.Date
}

// Phase returns the current phase.
func (s *Selection) Phase() Phase { return s.phase }

// Range returns the committed bounds. End is zero until the phase is complete.
func (s *Selection) Range() Range {
	return Range{Start: s.start, End: s.end}
}

// Hovered returns the transient hover date, zero when none.
func (s *Selection) Hovered() datetime.Date { return s.hover }

// Click applies a day click. It returns the committed range and true when the
// click completed a selection.
func (s *Selection) Click(d datetime.Date) (Range, bool) {
	if d.IsZero() {
		return Range{}, false
	}
	switch s.phase {
	case PhaseStartPicked:
		r := NewRange(s.start, d)
		s.start, s.end = r.Start, r.End
		s.phase = PhaseComplete
		s.hover = datetime.Date{}
		return r, true
	default:
		// Empty, or a new range after a completed one.
		s.start, s.end = d, datetime.Date{}
		s.phase = PhaseStartPicked
		s.hover = datetime.Date{}
		return Range{}, false
	}
}

// Hover records the date under the pointer while a start is picked. It never
// changes committed bounds.
func (s *Selection) Hover(d datetime.Date) {
	if s.phase != PhaseStartPicked {
		return
	}
	s.hover = d
}

// Leave clears the hover date.
func (s *Selection) Leave() {
	s.hover = datetime.Date{}
}

// Set adopts an externally supplied range.
func (s *Selection) Set(r Range) {
	s.hover = datetime.Date{}
	switch {
	case r.IsComplete():
		r = NewRange(r.Start, r.End)
		s.start, s.end, s.phase = r.Start, r.End, PhaseComplete
	case !r.Start.IsZero():
		s.start, s.end, s.phase = r.Start, datetime.Date{}, PhaseStartPicked
	case !r.End.IsZero():
		s.start, s.end, s.phase = r.End, datetime.Date{}, PhaseStartPicked
	default:
		s.Reset()
	}
}

// Reset returns to the empty phase.
func (s *Selection) Reset() {
	*s = Selection{}
}

// Preview returns the range being previewed while a start is picked: from
// start to the hover date in either order, or just the start.
func (s *Selection) Preview() Range {
	if s.phase != PhaseStartPicked {
		return Range{}
	}
	if s.hover.IsZero() {
		return SingleDay(s.start)
	}
	return NewRange(s.start, s.hover)
}

// Mark returns how day d should be highlighted in the current phase.
func (s *Selection) Mark(d datetime.Date) Mark {
	if d.IsZero() {
		return MarkNone
	}
	switch s.phase {
	case PhaseComplete:
		if d.Same(s.start) || d.Same(s.end) {
			return MarkEdge
		}
		if s.Range().Contains(d) {
			return MarkInRange
		}
	case PhaseStartPicked:
		if d.Same(s.start) {
			return MarkEdge
		}
		if s.Preview().Contains(d) {
			return MarkPreview
		}
	}
	return MarkNone
}
