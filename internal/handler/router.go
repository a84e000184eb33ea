package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles the route handlers mounted by NewRouter.
type Handlers struct {
	Calendar *CalendarHandler
	Picker   *PickerHandler
	Filter   *FilterHandler
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigins []string
	// AccessLog enables chi's request logger.
	AccessLog bool
}

// NewRouter builds the API router. Nil handlers are not mounted.
func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	if opts.AccessLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	// @Summary Health check
	// @Description Check if the API is running
	// @Tags health
	// @Produce json
	// @Success 200 {object} map[string]string
	// @Router /health [get]
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public routes
	if h.Calendar != nil {
		r.Get("/api/calendar", h.Calendar.GetMonth)
		r.Get("/api/presets", h.Calendar.ListPresets)
		r.Get("/api/presets/{key}", h.Calendar.GetPreset)
	}

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		if h.Picker != nil {
			r.Post("/api/pickers", h.Picker.Create)
			r.Get("/api/pickers/{id}", h.Picker.Get)
			r.Delete("/api/pickers/{id}", h.Picker.Delete)
			r.Post("/api/pickers/{id}/open", h.Picker.Open)
			r.Post("/api/pickers/{id}/close", h.Picker.Close)
			r.Post("/api/pickers/{id}/toggle", h.Picker.Toggle)
			r.Post("/api/pickers/{id}/document-click", h.Picker.DocumentClick)
			r.Post("/api/pickers/{id}/click", h.Picker.Click)
			r.Post("/api/pickers/{id}/hover", h.Picker.Hover)
			r.Post("/api/pickers/{id}/leave", h.Picker.Leave)
			r.Post("/api/pickers/{id}/preset", h.Picker.Preset)
			r.Post("/api/pickers/{id}/clear", h.Picker.Clear)
			r.Post("/api/pickers/{id}/navigate", h.Picker.Navigate)
			r.Put("/api/pickers/{id}/value", h.Picker.SetValue)
		}

		if h.Filter != nil {
			r.Get("/api/filters", h.Filter.List)
			r.Get("/api/filters/{key}", h.Filter.Get)
			r.Put("/api/filters/{key}", h.Filter.Put)
			r.Delete("/api/filters/{key}", h.Filter.Delete)
		}
	})

	return r
}
