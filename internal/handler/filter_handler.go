package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/opsdesk/backend/internal/model" // swagger types
	"github.com/opsdesk/backend/internal/service"
)

// FilterHandler handles HTTP requests for stored filter ranges.
type FilterHandler struct {
	service FilterServiceInterface
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(service FilterServiceInterface) *FilterHandler {
	return &FilterHandler{service: service}
}

// List godoc
// @Summary List stored filters
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RangeFilter
// @Failure 401 {object} ErrorResponse
// @Router /filters [get]
func (h *FilterHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := h.service.List(r.Context(), GetUserID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, filters)
}

// Get godoc
// @Summary Get a stored filter
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Param key path string true "Filter key"
// @Success 200 {object} model.RangeFilter
// @Failure 404 {object} ErrorResponse
// @Router /filters/{key} [get]
func (h *FilterHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.service.Get(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "key"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// Put godoc
// @Summary Store a filter range
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Filter key"
// @Param input body service.SaveFilterInput true "Range"
// @Success 200 {object} model.RangeFilter
// @Failure 400 {object} ErrorResponse
// @Router /filters/{key} [put]
func (h *FilterHandler) Put(w http.ResponseWriter, r *http.Request) {
	var input service.SaveFilterInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.service.Save(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "key"), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// Delete godoc
// @Summary Delete a stored filter
// @Tags filters
// @Security BearerAuth
// @Param key path string true "Filter key"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /filters/{key} [delete]
func (h *FilterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "key")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
