package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsdesk/backend/internal/model"
	"github.com/opsdesk/backend/internal/picker"
	"github.com/opsdesk/backend/internal/service"
	"github.com/opsdesk/backend/pkg/daterange"
)

// CalendarServiceInterface defines the contract for month grids and presets.
type CalendarServiceInterface interface {
	Month(year, month int) (*service.CalendarMonth, error)
	Presets() []daterange.Resolved
	Preset(key string) (*daterange.Resolved, error)
}

// PickerServiceInterface defines the contract for hosted picker sessions.
type PickerServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, input service.CreatePickerInput) (*service.PickerResult, error)
	Get(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	Open(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error)
	Close(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error)
	Toggle(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error)
	DocumentClick(ctx context.Context, userID uuid.UUID, id, target string) (*service.PickerResult, error)
	Click(ctx context.Context, userID uuid.UUID, id, date string) (*service.PickerResult, error)
	Hover(ctx context.Context, userID uuid.UUID, id string, date *string) (*service.PickerResult, error)
	Leave(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error)
	SelectPreset(ctx context.Context, userID uuid.UUID, id, key string) (*service.PickerResult, error)
	Clear(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error)
	Navigate(ctx context.Context, userID uuid.UUID, id string, delta int) (*service.PickerResult, error)
	SetValue(ctx context.Context, userID uuid.UUID, id string, value picker.Value) (*service.PickerResult, error)
}

// FilterServiceInterface defines the contract for stored filter ranges.
type FilterServiceInterface interface {
	Save(ctx context.Context, userID uuid.UUID, key string, input service.SaveFilterInput) (*model.RangeFilter, error)
	Get(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.RangeFilter, error)
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}
