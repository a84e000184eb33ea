package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/opsdesk/backend/pkg/daterange" // swagger types
)

// CalendarHandler handles HTTP requests for month grids and preset ranges.
type CalendarHandler struct {
	service CalendarServiceInterface
}

// NewCalendarHandler creates a new CalendarHandler with the given service.
func NewCalendarHandler(service CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// GetMonth godoc
// @Summary Get a month grid
// @Description Returns the Sunday-first grid of a month, padded to whole weeks
// @Tags calendar
// @Produce json
// @Param year query int true "Year (e.g., 2024)"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} service.CalendarMonth
// @Failure 400 {object} ErrorResponse
// @Router /calendar [get]
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, aerr := queryInt(r, "year")
	if aerr != nil {
		respondAppError(w, aerr)
		return
	}
	month, aerr := queryInt(r, "month")
	if aerr != nil {
		respondAppError(w, aerr)
		return
	}

	cal, err := h.service.Month(year, month)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cal)
}

// ListPresets godoc
// @Summary List preset ranges
// @Description Resolves every quick-select preset against today
// @Tags calendar
// @Produce json
// @Success 200 {array} daterange.Resolved
// @Router /presets [get]
func (h *CalendarHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Presets())
}

// GetPreset godoc
// @Summary Resolve a preset
// @Tags calendar
// @Produce json
// @Param key path string true "Preset key"
// @Success 200 {object} daterange.Resolved
// @Failure 404 {object} ErrorResponse
// @Router /presets/{key} [get]
func (h *CalendarHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.service.Preset(chi.URLParam(r, "key"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resolved)
}
