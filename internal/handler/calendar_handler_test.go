package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/backend/internal/apperror"
	"github.com/opsdesk/backend/internal/service"
	"github.com/opsdesk/backend/pkg/daterange"
)

func TestCalendarHandler_GetMonth(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(*MockCalendarService)
		wantStatus int
		wantField  string
	}{
		{
			name:  "success",
			query: "?year=2024&month=6",
			setupMock: func(m *MockCalendarService) {
				m.On("Month", 2024, 6).Return(&service.CalendarMonth{Year: 2024, Month: 6, Label: "June 2024"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing year",
			query:      "?month=6",
			setupMock:  func(m *MockCalendarService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "year",
		},
		{
			name:       "non-numeric month",
			query:      "?year=2024&month=june",
			setupMock:  func(m *MockCalendarService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "month",
		},
		{
			name:  "month out of range",
			query: "?year=2024&month=13",
			setupMock: func(m *MockCalendarService) {
				m.On("Month", 2024, 13).Return(nil, apperror.ValidationError("month", "must be between 1 and 12"))
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "month",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCalendarService)
			tt.setupMock(svc)
			h := NewCalendarHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/calendar"+tt.query, nil)
			w := httptest.NewRecorder()
			h.GetMonth(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantField, resp.Field)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCalendarHandler_Presets(t *testing.T) {
	svc := new(MockCalendarService)
	svc.On("Presets").Return([]daterange.Resolved{
		{Key: "today", Label: "Today", StartDate: "2024-06-15", EndDate: "2024-06-15"},
	})
	svc.On("Preset", "last_month").Return(&daterange.Resolved{
		Key: "last_month", Label: "Last month", StartDate: "2024-05-01", EndDate: "2024-05-31",
	}, nil)
	svc.On("Preset", "nope").Return(nil, apperror.NotFound("preset"))
	h := NewCalendarHandler(svc)

	w := httptest.NewRecorder()
	h.ListPresets(w, httptest.NewRequest(http.MethodGet, "/api/presets", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var list []daterange.Resolved
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2024-06-15", list[0].StartDate)

	for key, want := range map[string]int{"last_month": http.StatusOK, "nope": http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodGet, "/api/presets/"+key, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("key", key)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		w := httptest.NewRecorder()
		h.GetPreset(w, req)
		assert.Equal(t, want, w.Code, key)
	}
	svc.AssertExpectations(t)
}
