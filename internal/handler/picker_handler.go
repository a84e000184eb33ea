package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opsdesk/backend/internal/picker"
	"github.com/opsdesk/backend/internal/service"
)

// DocumentClickRequest reports a click anywhere on the page.
type DocumentClickRequest struct {
	Target string `json:"target"`
}

// DateRequest carries a single calendar date. A null date on hover clears the
// preview.
type DateRequest struct {
	Date *string `json:"date"`
}

// PresetRequest names a preset to apply.
type PresetRequest struct {
	Key string `json:"key"`
}

// NavigateRequest moves the displayed month.
type NavigateRequest struct {
	Delta int `json:"delta"`
}

// PickerHandler handles HTTP requests for hosted pickers.
type PickerHandler struct {
	service PickerServiceInterface
}

// NewPickerHandler creates a new PickerHandler.
func NewPickerHandler(service PickerServiceInterface) *PickerHandler {
	return &PickerHandler{service: service}
}

// Create godoc
// @Summary Create a picker
// @Description Starts a picker session, seeded from the stored filter when a filter key is given
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.CreatePickerInput true "Picker options"
// @Success 201 {object} service.PickerResult
// @Failure 400 {object} ErrorResponse
// @Router /pickers [post]
func (h *PickerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePickerInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Create(r.Context(), GetUserID(r.Context()), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// Get godoc
// @Summary Get a picker
// @Tags pickers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Success 200 {object} service.PickerResult
// @Failure 404 {object} ErrorResponse
// @Router /pickers/{id} [get]
func (h *PickerHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Get(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

// Delete godoc
// @Summary Dispose a picker
// @Tags pickers
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /pickers/{id} [delete]
func (h *PickerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Open godoc
// @Summary Open the calendar
// @Tags pickers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/open [post]
func (h *PickerHandler) Open(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Open(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

// Close godoc
// @Summary Close the calendar
// @Tags pickers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/close [post]
func (h *PickerHandler) Close(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Close(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

// Toggle flips the calendar open or closed.
func (h *PickerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Toggle(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

// DocumentClick godoc
// @Summary Report a page click
// @Description Clicks whose target lies outside the picker close it
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Param input body DocumentClickRequest true "Click target"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/document-click [post]
func (h *PickerHandler) DocumentClick(w http.ResponseWriter, r *http.Request) {
	var req DocumentClickRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.service.DocumentClick(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"), req.Target)
	h.respond(w, r, res, err)
}

// Click godoc
// @Summary Click a day cell
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Param input body DateRequest true "Clicked date"
// @Success 200 {object} service.PickerResult
// @Failure 400 {object} ErrorResponse
// @Router /pickers/{id}/click [post]
func (h *PickerHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "date is required", Field: "date"})
		return
	}
	res, err := h.service.Click(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"), *req.Date)
	h.respond(w, r, res, err)
}

// Hover godoc
// @Summary Hover a day cell
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Param input body DateRequest true "Hovered date, or null"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/hover [post]
func (h *PickerHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.service.Hover(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"), req.Date)
	h.respond(w, r, res, err)
}

// Leave clears the hover preview.
func (h *PickerHandler) Leave(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Leave(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

// Preset godoc
// @Summary Apply a preset
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Param input body PresetRequest true "Preset key"
// @Success 200 {object} service.PickerResult
// @Failure 400 {object} ErrorResponse
// @Router /pickers/{id}/preset [post]
func (h *PickerHandler) Preset(w http.ResponseWriter, r *http.Request) {
	var req PresetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.service.SelectPreset(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"), req.Key)
	h.respond(w, r, res, err)
}

// Clear godoc
// @Summary Clear the selection
// @Tags pickers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/clear [post]
func (h *PickerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Clear(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

// Navigate godoc
// @Summary Move the displayed month
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Param input body NavigateRequest true "Month delta"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/navigate [post]
func (h *PickerHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.service.Navigate(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"), req.Delta)
	h.respond(w, r, res, err)
}

// SetValue godoc
// @Summary Replace the controlled value
// @Tags pickers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picker ID"
// @Param input body picker.Value true "Value"
// @Success 200 {object} service.PickerResult
// @Router /pickers/{id}/value [put]
func (h *PickerHandler) SetValue(w http.ResponseWriter, r *http.Request) {
	var value picker.Value
	if err := decodeJSON(r, &value); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.service.SetValue(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "id"), value)
	h.respond(w, r, res, err)
}

func (h *PickerHandler) respond(w http.ResponseWriter, r *http.Request, res *service.PickerResult, err error) {
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
