package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/ryanrauch/restaurant-ai-landing/internal/apperror"
	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/page"
	"github.com/ryanrauch/restaurant-ai-landing/internal/storage"
	"github.com/ryanrauch/restaurant-ai-landing/internal/version"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// Handler serves the landing page and the operational endpoints.
type Handler struct {
	app     *page.App
	store   *storage.Service
	log     *slog.Logger
	startAt time.Time
}

// NewHandler creates a new handler
func NewHandler(app *page.App, store *storage.Service, log *slog.Logger) *Handler {
	return &Handler{
		app:     app,
		store:   store,
		log:     log.With(logger.Scope("handlers")),
		startAt: time.Now(),
	}
}

// RegisterRoutes registers page and health routes
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/", h.LandingPage)
	r.Head("/", h.LandingPage)
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
}

// LandingPage renders the full document.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	out, err := h.app.HTML(r.Context(), page.TargetHTTP)
	if err != nil {
		apperror.Write(w, r, h.log, apperror.NewInternal("Failed to render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(out)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	contentCheck := Check{Status: "healthy"}
	if err := h.app.Site().Validate(); err != nil {
		contentCheck = Check{Status: "unhealthy", Message: err.Error()}
	}

	storageCheck := Check{Status: "disabled"}
	if h.store.Enabled() {
		storageCheck = Check{Status: "configured", Message: h.store.Bucket()}
	}

	overall := "healthy"
	statusCode := http.StatusOK
	if contentCheck.Status == "unhealthy" {
		overall = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks: map[string]Check{
			"content": contentCheck,
			"storage": storageCheck,
		},
	})
}

// Healthz returns a simple liveness check
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// NotFound answers unknown paths with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	apperror.Write(w, r, h.log, apperror.NewNotFound(r.URL.Path))
}

// MethodNotAllowed answers known paths hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apperror.Write(w, r, h.log, apperror.ErrMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
