package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/backend/internal/apperror"
	"github.com/opsdesk/backend/internal/handler"
	"github.com/opsdesk/backend/internal/model"
	"github.com/opsdesk/backend/internal/service"
	"github.com/opsdesk/backend/pkg/daterange"
)

// ============ Mock Services ============

type MockFilterStore struct {
	mock.Mock
}

func (m *MockFilterStore) Get(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RangeFilter), args.Error(1)
}

func (m *MockFilterStore) Save(ctx context.Context, userID uuid.UUID, key string, input service.SaveFilterInput) (*model.RangeFilter, error) {
	args := m.Called(ctx, userID, key, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RangeFilter), args.Error(1)
}

func (m *MockFilterStore) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

// ============ Test Server Setup ============

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

type apiClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func setupTestServer(t *testing.T, store service.FilterStore) *apiClient {
	t.Helper()

	now := func() time.Time { return testNow }
	calendar, err := service.NewCalendarService(now, time.UTC, 16)
	require.NoError(t, err)
	pickers := service.NewPickerService(store, service.PickerConfig{
		Location: time.UTC,
		Now:      now,
		Grid:     calendar.Grid,
	})

	router := handler.NewRouter(handler.Handlers{
		Calendar: handler.NewCalendarHandler(calendar),
		Picker:   handler.NewPickerHandler(pickers),
	}, handler.RouterOptions{})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := service.GenerateToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	return &apiClient{t: t, server: server, token: token}
}

func (c *apiClient) do(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// ============ API Integration Tests ============

func TestAPI_HealthCheck(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)
	var body map[string]string
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/health", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAPI_Presets(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)
	c.token = ""

	var all []daterange.Resolved
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/presets", nil, &all))
	require.Len(t, all, 13)
	assert.Equal(t, daterange.PresetToday, all[0].Key)
	assert.Equal(t, "2024-06-15", all[0].StartDate)

	var one daterange.Resolved
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/presets/last_quarter", nil, &one))
	assert.Equal(t, "2024-01-01", one.StartDate)
	assert.Equal(t, "2024-03-31", one.EndDate)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/presets/fortnight", nil, nil))
}

func TestAPI_Calendar(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)

	var month service.CalendarMonth
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/calendar?year=2024&month=12", nil, &month))
	assert.Equal(t, "December 2024", month.Label)
	assert.Equal(t, daterange.NewMonth(2025, time.January), month.Next)
	for _, week := range month.Weeks {
		assert.Len(t, week, 7)
	}

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/calendar?year=2024&month=0", nil, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/calendar?month=5", nil, nil))
}

func TestAPI_PickerRequiresAuth(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)
	c.token = ""
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/pickers", map[string]string{}, nil))
}

func TestAPI_PickerTwoClickFlow(t *testing.T) {
	t.Parallel()

	store := new(MockFilterStore)
	store.On("Get", mock.Anything, mock.Anything, "expense-report").Return(nil, apperror.NotFound("filter"))
	store.On("Save", mock.Anything, mock.Anything, "expense-report", service.SaveFilterInput{
		StartDate: "2024-06-05", EndDate: "2024-06-10",
	}).Return(&model.RangeFilter{Key: "expense-report", StartDate: "2024-06-05", EndDate: "2024-06-10"}, nil).Once()
	c := setupTestServer(t, store)

	var res service.PickerResult
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/pickers", map[string]interface{}{
		"placeholder": "Report period",
		"filterKey":   "expense-report",
	}, &res))
	id := res.Picker.ID
	base := "/api/pickers/" + id
	assert.Equal(t, "Report period", res.Picker.Label)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/open", nil, &res))
	assert.True(t, res.Picker.Open)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/click", map[string]string{"date": "2024-06-10"}, &res))
	assert.Equal(t, daterange.PhaseStartPicked, res.Picker.Phase)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/hover", map[string]string{"date": "2024-06-07"}, &res))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/hover", map[string]string{"date": "2024-06-03"}, &res))
	assert.Nil(t, res.Change, "hovering never emits a change")

	res = service.PickerResult{}
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/click", map[string]string{"date": "2024-06-05"}, &res))
	require.NotNil(t, res.Change)
	assert.Equal(t, daterange.CanonicalRange{StartDate: "2024-06-05", EndDate: "2024-06-10"}, *res.Change)
	assert.False(t, res.Picker.Open)
	assert.Equal(t, "Jun 5, 2024 - Jun 10, 2024", res.Picker.Label)

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, base, nil, nil))
	store.AssertExpectations(t)
}

func TestAPI_PickerOutsideClickAndPresets(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)

	var res service.PickerResult
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/pickers", map[string]interface{}{
		"value": map[string]interface{}{"startDate": "2024-03-20", "endDate": "2024-03-02"},
	}, &res))
	base := "/api/pickers/" + res.Picker.ID
	assert.Equal(t, "2024-03-02", res.Picker.StartDate)
	assert.Equal(t, daterange.NewMonth(2024, time.March), res.Picker.Month)

	c.do(http.MethodPost, base+"/open", nil, &res)
	inside := res.Picker.Weeks[1][3].Target
	require.NotEmpty(t, inside)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/document-click", map[string]string{"target": inside}, &res))
	assert.True(t, res.Picker.Open)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/document-click", map[string]string{"target": "header/search"}, &res))
	assert.False(t, res.Picker.Open)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/preset", map[string]string{"key": "this_year"}, &res))
	require.NotNil(t, res.Change)
	assert.Equal(t, "2024-01-01", res.Change.StartDate)
	assert.Equal(t, "2024-12-31", res.Change.EndDate)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, base+"/preset", map[string]string{"key": "someday"}, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/navigate", map[string]int{"delta": 1}, &res))
	assert.Equal(t, daterange.NewMonth(2024, time.February), res.Picker.Month)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, base+"/clear", nil, &res))
	assert.True(t, res.Cleared)
	assert.Equal(t, daterange.PhaseEmpty, res.Picker.Phase)
}

func TestAPI_PickerIsolatedPerUser(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)
	var res service.PickerResult
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/pickers", map[string]string{}, &res))

	other, err := service.GenerateToken(uuid.New(), time.Hour)
	require.NoError(t, err)
	c.token = other
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/pickers/"+res.Picker.ID, nil, nil))
}

func TestAPI_InvalidJSON(t *testing.T) {
	t.Parallel()

	c := setupTestServer(t, nil)
	req, err := http.NewRequest(http.MethodPost, c.server.URL+"/api/pickers", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
