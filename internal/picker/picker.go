// Package picker is the date-range picker component. It owns the transient
// selection state for one view, normalizes the host-supplied value on change,
// and reports completed selections back through OnChange. The host stays the
// source of truth; a Picker keeps nothing durable.
package picker

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/backend/internal/events"
	"github.com/opsdesk/backend/pkg/daterange"
	"github.com/opsdesk/backend/pkg/datetime"
)

// DefaultPlaceholder is shown when no placeholder is configured.
const DefaultPlaceholder = "Select date range"

// Value is the externally controlled range. Each bound is a canonical string,
// a time value, or null.
type Value struct {
	StartDate datetime.Input `json:"startDate"`
	EndDate   datetime.Input `json:"endDate"`
}

// Options configures a Picker.
type Options struct {
	// ID names the picker's region in event targets. Defaults to a new UUID.
	ID          string
	Placeholder string
	// OnChange receives each completed selection exactly once.
	OnChange func(daterange.CanonicalRange)
	// OnClear is called after Clear resets the selection.
	OnClear  func()
	Location *time.Location
	Now      func() time.Time
	// Events is the ambient click stream used to close on outside clicks.
	Events *events.Bus
	// Grid builds the cells of a month. Defaults to Month.Grid.
	Grid GridFunc
}

// GridFunc returns the cells of m laid out in loc.
type GridFunc func(m daterange.Month, loc *time.Location) []daterange.Cell

// Picker is not safe for concurrent use; callers serialize access.
type Picker struct {
	id          string
	placeholder string
	onChange    func(daterange.CanonicalRange)
	onClear     func()
	loc         *time.Location
	resolver    *daterange.Resolver
	bus         *events.Bus
	grid        GridFunc

	value       Value
	selection   daterange.Selection
	view        daterange.Month
	open        bool
	unsubscribe func()
}

// New creates a closed picker showing the current month.
func New(opts Options) *Picker {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.Events == nil {
		opts.Events = events.NewBus()
	}
	if opts.Grid == nil {
		opts.Grid = func(m daterange.Month, loc *time.Location) []daterange.Cell { return m.Grid(loc) }
	}
	resolver := daterange.NewResolver(opts.Now, opts.Location)

	return &Picker{
		id:          opts.ID,
		placeholder: opts.Placeholder,
		onChange:    opts.OnChange,
		onClear:     opts.OnClear,
		loc:         resolver.Location,
		resolver:    resolver,
		bus:         opts.Events,
		grid:        opts.Grid,
		view:        daterange.MonthOf(resolver.Today()),
	}
}

// ID returns the picker's identifier.
func (p *Picker) ID() string { return p.id }

// Region is the event target prefix covering the picker and everything in it.
func (p *Picker) Region() string { return "picker/" + p.id }

// CellTarget is the event target of the day cell for d.
func (p *Picker) CellTarget(d datetime.Date) string {
	return p.Region() + "/cell/" + d.Canonical()
}

// Value returns the last value supplied by the host.
func (p *Picker) Value() Value { return p.value }

// SetValue is called by the host whenever its value may have changed. Only when
// either bound differs from the previous value is the selection re-derived.
// It reports whether the value changed.
func (p *Picker) SetValue(v Value) bool {
	if v == p.value {
		return false
	}
	p.value = v

	r := daterange.Range{
		Start: datetime.FromCanonicalOrDate(v.StartDate, p.loc),
		End:   datetime.FromCanonicalOrDate(v.EndDate, p.loc),
	}
	p.selection.Set(r)
	if start := p.selection.Range().Start; !start.IsZero() {
		p.view = daterange.MonthOf(start)
	}
	return true
}

// Range returns the committed selection bounds.
func (p *Picker) Range() daterange.Range { return p.selection.Range() }

// Phase returns the selection phase.
func (p *Picker) Phase() daterange.Phase { return p.selection.Phase() }

// IsOpen reports whether the calendar is shown.
func (p *Picker) IsOpen() bool { return p.open }

// Listening reports whether the picker holds an event subscription.
func (p *Picker) Listening() bool { return p.unsubscribe != nil }

// Open shows the calendar and starts watching for outside clicks.
func (p *Picker) Open() {
	if p.open {
		return
	}
	p.open = true
	p.unsubscribe = p.bus.Subscribe(p.handleEvent)
}

// Close hides the calendar and releases the click subscription.
func (p *Picker) Close() {
	p.open = false
	p.selection.Leave()
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Toggle opens a closed picker and closes an open one.
func (p *Picker) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.Open()
}

// Dispose tears the picker down. It is safe to call more than once.
func (p *Picker) Dispose() {
	p.Close()
}

func (p *Picker) handleEvent(e events.Event) {
	if e.Kind != events.KindClick || p.contains(e.Target) {
		return
	}
	p.Close()
}

func (p *Picker) contains(target string) bool {
	region := p.Region()
	return target == region || strings.HasPrefix(target, region+"/")
}

// ClickCell handles a click on a grid cell. Blank cells are ignored.
func (p *Picker) ClickCell(c daterange.Cell) (daterange.CanonicalRange, bool) {
	if c.IsBlank() {
		return daterange.CanonicalRange{}, false
	}
	return p.ClickDay(c.Date)
}

// ClickDay advances the selection. When the click completes a range, OnChange
// is invoked with it and the picker closes.
func (p *Picker) ClickDay(d datetime.Date) (daterange.CanonicalRange, bool) {
	r, done := p.selection.Click(p.local(d))
	if !done {
		return daterange.CanonicalRange{}, false
	}
	return p.commit(r), true
}

// HoverDay updates the preview date.
func (p *Picker) HoverDay(d datetime.Date) {
	if d.IsZero() {
		p.selection.Leave()
		return
	}
	p.selection.Hover(p.local(d))
}

// LeaveGrid clears the preview date.
func (p *Picker) LeaveGrid() {
	p.selection.Leave()
}

// SelectPreset commits the named preset immediately and closes the picker.
func (p *Picker) SelectPreset(key string) (daterange.CanonicalRange, error) {
	r, err := p.resolver.Resolve(key)
	if err != nil {
		return daterange.CanonicalRange{}, err
	}
	p.selection.Set(r)
	p.view = daterange.MonthOf(r.Start)
	return p.commit(r), nil
}

// Clear drops the selection. OnChange is not called.
func (p *Picker) Clear() {
	p.selection.Reset()
	if p.onClear != nil {
		p.onClear()
	}
}

func (p *Picker) commit(r daterange.Range) daterange.CanonicalRange {
	c := r.Canonical()
	if p.onChange != nil {
		p.onChange(c)
	}
	p.Close()
	return c
}

// local re-expresses d's calendar components in the picker's location.
func (p *Picker) local(d datetime.Date) datetime.Date {
	if d.IsZero() {
		return d
	}
	return datetime.NewDate(d.Year(), d.Month(), d.Day(), p.loc)
}

// ViewMonth returns the month currently displayed.
func (p *Picker) ViewMonth() daterange.Month { return p.view }

// ShowMonth jumps to m.
func (p *Picker) ShowMonth(m daterange.Month) {
	p.view = daterange.NewMonth(m.Year, m.Month)
}

// NextMonth advances the displayed month.
func (p *Picker) NextMonth() { p.view = p.view.Next() }

// PrevMonth moves the displayed month back.
func (p *Picker) PrevMonth() { p.view = p.view.Prev() }

// Navigate moves the displayed month by delta.
func (p *Picker) Navigate(delta int) { p.view = p.view.Add(delta) }

// Grid returns the cells of the displayed month.
func (p *Picker) Grid() []daterange.Cell {
	return p.grid(p.view, p.loc)
}

// Label is the text shown on the closed picker.
func (p *Picker) Label() string {
	r := p.selection.Range()
	switch {
	case r.IsComplete():
		return r.Start.Display() + " - " + r.End.Display()
	case !r.Start.IsZero():
		return r.Start.Display() + " - ..."
	default:
		return p.placeholder
	}
}

// Placeholder returns the configured placeholder.
func (p *Picker) Placeholder() string { return p.placeholder }

// Location returns the calendar's location.
func (p *Picker) Location() *time.Location { return p.loc }
