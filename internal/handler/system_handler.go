package handler

import (
	"context"
	"net/http"
	"time"

	"item-api/internal/config"
	"item-api/internal/model"

	"github.com/rs/zerolog"
)

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the root document and the health endpoints.
type SystemHandler struct {
	app    config.AppConfig
	db     Pinger
	logger zerolog.Logger
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(app config.AppConfig, db Pinger, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		app:    app,
		db:     db,
		logger: logger.With().Str("handler", "system").Logger(),
	}
}

// Root handles GET / with a short description of the service.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to " + h.app.Name,
		"version": h.app.Version,
		"items":   "/api/v1/items",
	})
}

// Health reports that the process is alive. It does not touch the database.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready reports whether the database accepts connections.
func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("readiness check failed")
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeServiceUnavailable, "database unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
