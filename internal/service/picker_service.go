package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/backend/internal/apperror"
	"github.com/opsdesk/backend/internal/events"
	"github.com/opsdesk/backend/internal/logger"
	"github.com/opsdesk/backend/internal/model"
	"github.com/opsdesk/backend/internal/picker"
	"github.com/opsdesk/backend/pkg/daterange"
	"github.com/opsdesk/backend/pkg/datetime"
)

// DefaultPickerIdleTTL is how long an untouched picker session is kept.
const DefaultPickerIdleTTL = 30 * time.Minute

const maxNavigateDelta = 1200

// FilterStore persists the range a picker commits under its filter key.
type FilterStore interface {
	Get(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error)
	Save(ctx context.Context, userID uuid.UUID, key string, input SaveFilterInput) (*model.RangeFilter, error)
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}

// PickerConfig configures a PickerService.
type PickerConfig struct {
	Location    *time.Location
	Now         func() time.Time
	Placeholder string
	IdleTTL     time.Duration
	Grid        picker.GridFunc
}

// CreatePickerInput is the request to open a picker session.
type CreatePickerInput struct {
	Placeholder string       `json:"placeholder"`
	FilterKey   string       `json:"filterKey"`
	Value       picker.Value `json:"value"`
}

// PickerResult is a picker's state after an operation.
type PickerResult struct {
	Picker  picker.Snapshot           `json:"picker"`
	Change  *daterange.CanonicalRange `json:"change,omitempty"`
	Cleared bool                      `json:"cleared,omitempty"`
	Filter  *model.RangeFilter        `json:"filter,omitempty"`
}

type pickerSession struct {
	mu        sync.Mutex
	userID    uuid.UUID
	filterKey string
	picker    *picker.Picker
	bus       *events.Bus
	lastSeen  time.Time
	closed    bool

	// set by picker callbacks during an operation
	change  *daterange.CanonicalRange
	preset  *string
	cleared bool
}

// PickerService hosts picker components for API clients. Each session owns a
// picker and its own click stream; operations on one session are serialized.
type PickerService struct {
	store FilterStore
	cfg   PickerConfig

	mu       sync.RWMutex
	sessions map[string]*pickerSession
}

// NewPickerService creates a PickerService. store may be nil, in which case
// committed ranges are not persisted.
func NewPickerService(store FilterStore, cfg PickerConfig) *PickerService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = picker.DefaultPlaceholder
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultPickerIdleTTL
	}
	return &PickerService{
		store:    store,
		cfg:      cfg,
		sessions: make(map[string]*pickerSession),
	}
}

// Create starts a picker session. A null value is seeded from the stored filter
// when a filter key is given.
func (s *PickerService) Create(ctx context.Context, userID uuid.UUID, input CreatePickerInput) (*PickerResult, error) {
	if input.FilterKey != "" {
		if err := ValidateFilterKey(input.FilterKey); err != nil {
			return nil, apperror.ValidationError("filterKey", apperror.GetMessage(err))
		}
	}

	value := input.Value
	if value.StartDate.IsNull() && value.EndDate.IsNull() && input.FilterKey != "" && s.store != nil {
		stored, err := s.store.Get(ctx, userID, input.FilterKey)
		switch {
		case errors.Is(err, apperror.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			value = picker.Value{
				StartDate: datetime.InputString(stored.StartDate),
				EndDate:   datetime.InputString(stored.EndDate),
			}
		}
	}

	placeholder := input.Placeholder
	if placeholder == "" {
		placeholder = s.cfg.Placeholder
	}

	sess := &pickerSession{
		userID:    userID,
		filterKey: input.FilterKey,
		bus:       events.NewBus(),
		lastSeen:  s.cfg.Now(),
	}
	sess.picker = picker.New(picker.Options{
		Placeholder: placeholder,
		OnChange: func(r daterange.CanonicalRange) {
			sess.change = &r
		},
		OnClear: func() {
			sess.cleared = true
		},
		Location: s.cfg.Location,
		Now:      s.cfg.Now,
		Events:   sess.bus,
		Grid:     s.cfg.Grid,
	})
	sess.picker.SetValue(value)

	s.mu.Lock()
	s.sessions[sess.picker.ID()] = sess
	s.mu.Unlock()

	logger.FromContext(ctx).Info("picker session created",
		"picker_id", sess.picker.ID(),
		"filter_key", input.FilterKey,
	)
	return &PickerResult{Picker: sess.picker.Snapshot()}, nil
}

// Get returns the current state of a session.
func (s *PickerService) Get(ctx context.Context, userID uuid.UUID, id string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(*pickerSession) error { return nil })
}

// Delete disposes a session.
func (s *PickerService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok || sess.userID != userID {
		s.mu.Unlock()
		return apperror.NotFound("picker")
	}
	delete(s.sessions, id)
	s.mu.Unlock()

	sess.mu.Lock()
	sess.dispose()
	sess.mu.Unlock()

	logger.FromContext(ctx).Info("picker session deleted", "picker_id", id)
	return nil
}

// Open shows the calendar.
func (s *PickerService) Open(ctx context.Context, userID uuid.UUID, id string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.picker.Open()
		return nil
	})
}

// Close hides the calendar.
func (s *PickerService) Close(ctx context.Context, userID uuid.UUID, id string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.picker.Close()
		return nil
	})
}

// Toggle flips the calendar's visibility.
func (s *PickerService) Toggle(ctx context.Context, userID uuid.UUID, id string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.picker.Toggle()
		return nil
	})
}

// DocumentClick reports a click anywhere on the page. Targets outside the
// picker's region close it.
func (s *PickerService) DocumentClick(ctx context.Context, userID uuid.UUID, id, target string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.bus.Publish(events.Event{Kind: events.KindClick, Target: target})
		return nil
	})
}

// Click selects a day cell.
func (s *PickerService) Click(ctx context.Context, userID uuid.UUID, id, date string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		d, err := datetime.ParseCanonical(date, sess.picker.Location())
		if err != nil {
			return apperror.InvalidDate("date")
		}
		if !sess.picker.IsOpen() {
			return apperror.BadRequest("picker is not open")
		}
		sess.picker.ClickDay(d)
		return nil
	})
}

// Hover moves the preview to date. A nil date clears the preview.
func (s *PickerService) Hover(ctx context.Context, userID uuid.UUID, id string, date *string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		if date == nil {
			sess.picker.LeaveGrid()
			return nil
		}
		d, err := datetime.ParseCanonical(*date, sess.picker.Location())
		if err != nil {
			return apperror.InvalidDate("date")
		}
		sess.picker.HoverDay(d)
		return nil
	})
}

// Leave clears the preview when the pointer leaves the grid.
func (s *PickerService) Leave(ctx context.Context, userID uuid.UUID, id string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.picker.LeaveGrid()
		return nil
	})
}

// SelectPreset commits a preset range.
func (s *PickerService) SelectPreset(ctx context.Context, userID uuid.UUID, id, key string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.preset = &key
		if _, err := sess.picker.SelectPreset(key); err != nil {
			return apperror.ValidationError("key", "unknown preset")
		}
		return nil
	})
}

// Clear drops the selection and forgets the stored filter.
func (s *PickerService) Clear(ctx context.Context, userID uuid.UUID, id string) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.picker.Clear()
		return nil
	})
}

// Navigate moves the displayed month by delta.
func (s *PickerService) Navigate(ctx context.Context, userID uuid.UUID, id string, delta int) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		if delta < -maxNavigateDelta || delta > maxNavigateDelta {
			return apperror.ValidationError("delta", "must be between -1200 and 1200")
		}
		sess.picker.Navigate(delta)
		return nil
	})
}

// SetValue replaces the controlled value.
func (s *PickerService) SetValue(ctx context.Context, userID uuid.UUID, id string, value picker.Value) (*PickerResult, error) {
	return s.do(ctx, userID, id, func(sess *pickerSession) error {
		sess.picker.SetValue(value)
		return nil
	})
}

// Count returns the number of live sessions.
func (s *PickerService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SweepIdle disposes sessions untouched for longer than the idle TTL and
// returns how many were removed. Sessions busy with an operation are skipped
// until the next sweep.
func (s *PickerService) SweepIdle(ctx context.Context) int {
	cutoff := s.cfg.Now().Add(-s.cfg.IdleTTL)

	s.mu.RLock()
	candidates := make(map[string]*pickerSession, len(s.sessions))
	for id, sess := range s.sessions {
		candidates[id] = sess
	}
	s.mu.RUnlock()

	removed := 0
	for id, sess := range candidates {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.closed || !sess.lastSeen.Before(cutoff) {
			sess.mu.Unlock()
			continue
		}
		sess.dispose()
		sess.mu.Unlock()

		s.mu.Lock()
		if s.sessions[id] == sess {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		removed++
	}
	if removed > 0 {
		logger.FromContext(ctx).Info("idle picker sessions swept", "removed", removed, "remaining", s.Count())
	}
	return removed
}

func (s *PickerService) do(ctx context.Context, userID uuid.UUID, id string, fn func(*pickerSession) error) (*PickerResult, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.userID != userID {
		return nil, apperror.NotFound("picker")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, apperror.NotFound("picker")
	}
	sess.lastSeen = s.cfg.Now()
	sess.change, sess.preset, sess.cleared = nil, nil, false

	if err := fn(sess); err != nil {
		return nil, err
	}

	result := &PickerResult{Change: sess.change, Cleared: sess.cleared}
	switch {
	case sess.change != nil:
		// The host adopts the committed range as its new value.
		sess.picker.SetValue(picker.Value{
			StartDate: datetime.InputString(sess.change.StartDate),
			EndDate:   datetime.InputString(sess.change.EndDate),
		})
		f, err := s.persist(ctx, sess)
		if err != nil {
			return nil, err
		}
		result.Filter = f
	case sess.cleared:
		sess.picker.SetValue(picker.Value{})
		if err := s.forget(ctx, sess); err != nil {
			return nil, err
		}
	}

	result.Picker = sess.picker.Snapshot()
	return result, nil
}

func (s *PickerService) persist(ctx context.Context, sess *pickerSession) (*model.RangeFilter, error) {
	if s.store == nil || sess.filterKey == "" {
		return nil, nil
	}
	f, err := s.store.Save(ctx, sess.userID, sess.filterKey, SaveFilterInput{
		StartDate: sess.change.StartDate,
		EndDate:   sess.change.EndDate,
		Preset:    sess.preset,
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to persist picker range",
			"picker_id", sess.picker.ID(),
			"filter_key", sess.filterKey,
			"error", err,
		)
		return nil, err
	}
	return f, nil
}

func (s *PickerService) forget(ctx context.Context, sess *pickerSession) error {
	if s.store == nil || sess.filterKey == "" {
		return nil
	}
	err := s.store.Delete(ctx, sess.userID, sess.filterKey)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	return nil
}

func (sess *pickerSession) dispose() {
	sess.picker.Dispose()
	sess.closed = true
}
