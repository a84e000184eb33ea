package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/opsdesk/backend/internal/model"
	"github.com/opsdesk/backend/internal/picker"
	"github.com/opsdesk/backend/internal/service"
	"github.com/opsdesk/backend/pkg/daterange"
)

// MockCalendarService implements CalendarServiceInterface for testing
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) Month(year, month int) (*service.CalendarMonth, error) {
	args := m.Called(year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CalendarMonth), args.Error(1)
}

func (m *MockCalendarService) Presets() []daterange.Resolved {
	args := m.Called()
	return args.Get(0).([]daterange.Resolved)
}

func (m *MockCalendarService) Preset(key string) (*daterange.Resolved, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*daterange.Resolved), args.Error(1)
}

// MockFilterService implements FilterServiceInterface for testing
type MockFilterService struct {
	mock.Mock
}

func (m *MockFilterService) Save(ctx context.Context, userID uuid.UUID, key string, input service.SaveFilterInput) (*model.RangeFilter, error) {
	args := m.Called(ctx, userID, key, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RangeFilter), args.Error(1)
}

func (m *MockFilterService) Get(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RangeFilter), args.Error(1)
}

func (m *MockFilterService) List(ctx context.Context, userID uuid.UUID) ([]model.RangeFilter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RangeFilter), args.Error(1)
}

func (m *MockFilterService) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

// MockPickerService implements PickerServiceInterface for testing
type MockPickerService struct {
	mock.Mock
}

func (m *MockPickerService) result(args mock.Arguments) (*service.PickerResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PickerResult), args.Error(1)
}

func (m *MockPickerService) Create(ctx context.Context, userID uuid.UUID, input service.CreatePickerInput) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, input))
}

func (m *MockPickerService) Get(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id))
}

func (m *MockPickerService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPickerService) Open(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id))
}

func (m *MockPickerService) Close(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id))
}

func (m *MockPickerService) Toggle(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id))
}

func (m *MockPickerService) DocumentClick(ctx context.Context, userID uuid.UUID, id, target string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id, target))
}

func (m *MockPickerService) Click(ctx context.Context, userID uuid.UUID, id, date string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id, date))
}

func (m *MockPickerService) Hover(ctx context.Context, userID uuid.UUID, id string, date *string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id, date))
}

func (m *MockPickerService) Leave(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id))
}

func (m *MockPickerService) SelectPreset(ctx context.Context, userID uuid.UUID, id, key string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id, key))
}

func (m *MockPickerService) Clear(ctx context.Context, userID uuid.UUID, id string) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id))
}

func (m *MockPickerService) Navigate(ctx context.Context, userID uuid.UUID, id string, delta int) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id, delta))
}

func (m *MockPickerService) SetValue(ctx context.Context, userID uuid.UUID, id string, value picker.Value) (*service.PickerResult, error) {
	return m.result(m.Called(ctx, userID, id, value))
}
