package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/backend/pkg/datetime"
)

func june(day int) datetime.Date {
	return datetime.NewDate(2024, time.June, day, time.UTC)
}

func TestSelection_TwoClickSwapsOrder(t *testing.T) {
	t.Parallel()

	var s Selection
	_, done := s.Click(june(10))
	require.False(t, done)
	assert.Equal(t, PhaseStartPicked, s.Phase())
	assert.True(t, s.Range().End.IsZero())

	r, done := s.Click(june(5))
	require.True(t, done)
	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, CanonicalRange{StartDate: "2024-06-05", EndDate: "2024-06-10"}, r.Canonical())
	assert.Equal(t, r, s.Range())
}

func TestSelection_SameDayTwice(t *testing.T) {
	t.Parallel()

	var s Selection
	s.Click(june(10))
	r, done := s.Click(june(10))
	require.True(t, done)
	assert.Equal(t, CanonicalRange{StartDate: "2024-06-10", EndDate: "2024-06-10"}, r.Canonical())
	assert.Equal(t, 1, r.Days())
}

func TestSelection_ReselectAfterComplete(t *testing.T) {
	t.Parallel()

	var s Selection
	s.Click(june(1))
	s.Click(june(3))
	require.Equal(t, PhaseComplete, s.Phase())

	_, done := s.Click(june(20))
	assert.False(t, done)
	assert.Equal(t, PhaseStartPicked, s.Phase())
	assert.Equal(t, "2024-06-20", s.Range().Start.Canonical())
	assert.True(t, s.Range().End.IsZero())
}

func TestSelection_HoverDoesNotCommit(t *testing.T) {
	t.Parallel()

	var s Selection
	s.Hover(june(4))
	assert.True(t, s.Hovered().IsZero(), "hover ignored before a start is picked")

	s.Click(june(10))
	s.Hover(june(4))
	assert.Equal(t, PhaseStartPicked, s.Phase())
	assert.Equal(t, "2024-06-10", s.Range().Start.Canonical())
	assert.True(t, s.Range().End.IsZero())
	assert.Equal(t, CanonicalRange{StartDate: "2024-06-04", EndDate: "2024-06-10"}, s.Preview().Canonical())

	s.Leave()
	assert.True(t, s.Hovered().IsZero())
	assert.Equal(t, SingleDay(june(10)), s.Preview())
}

func TestSelection_ClickZeroDateIsNoop(t *testing.T) {
	t.Parallel()

	var s Selection
	_, done := s.Click(datetime.Date{})
	assert.False(t, done)
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestSelection_Mark(t *testing.T) {
	t.Parallel()

	var s Selection
	assert.Equal(t, MarkNone, s.Mark(june(1)))

	s.Click(june(10))
	s.Hover(june(7))
	assert.Equal(t, MarkEdge, s.Mark(june(10)))
	assert.Equal(t, MarkPreview, s.Mark(june(7)))
	assert.Equal(t, MarkPreview, s.Mark(june(8)))
	assert.Equal(t, MarkNone, s.Mark(june(6)))
	assert.Equal(t, MarkNone, s.Mark(june(11)))

	s.Click(june(12))
	assert.Equal(t, MarkEdge, s.Mark(june(10)))
	assert.Equal(t, MarkInRange, s.Mark(june(11)))
	assert.Equal(t, MarkEdge, s.Mark(june(12)))
	assert.Equal(t, MarkNone, s.Mark(june(7)))
	assert.Equal(t, MarkNone, s.Mark(datetime.Date{}))
}

func TestSelection_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     Range
		wantPhase Phase
		wantRange Range
	}{
		{"both bounds", Range{Start: june(9), End: june(2)}, PhaseComplete, Range{Start: june(2), End: june(9)}},
		{"start only", Range{Start: june(9)}, PhaseStartPicked, Range{Start: june(9)}},
		{"end only", Range{End: june(9)}, PhaseStartPicked, Range{Start: june(9)}},
		{"empty", Range{}, PhaseEmpty, Range{}},
		{
			"five digit year",
			Range{Start: datetime.NewDate(10000, time.January, 2, time.UTC), End: datetime.NewDate(9999, time.December, 31, time.UTC)},
			PhaseComplete,
			Range{Start: datetime.NewDate(9999, time.December, 31, time.UTC), End: datetime.NewDate(10000, time.January, 2, time.UTC)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s Selection
			s.Click(june(20))
			s.Hover(june(22))
			s.Set(tt.input)
			assert.Equal(t, tt.wantPhase, s.Phase())
			assert.Equal(t, tt.wantRange, s.Range())
			assert.True(t, s.Hovered().IsZero())
		})
	}
}

func TestPhaseAndMarkText(t *testing.T) {
	text, err := PhaseStartPicked.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "start_picked", string(text))
	assert.Equal(t, "complete", PhaseComplete.String())
	assert.Equal(t, "empty", PhaseEmpty.String())
	assert.Equal(t, "preview", MarkPreview.String())
	assert.Equal(t, "in_range", MarkInRange.String())
}

func TestPhaseAndMarkUnmarshalText(t *testing.T) {
	var p Phase
	require.NoError(t, p.UnmarshalText([]byte("complete")))
	assert.Equal(t, PhaseComplete, p)
	assert.Error(t, p.UnmarshalText([]byte("done")))

	var m Mark
	require.NoError(t, m.UnmarshalText([]byte("edge")))
	assert.Equal(t, MarkEdge, m)
	assert.Error(t, m.UnmarshalText([]byte("selected")))
}
