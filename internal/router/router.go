package router

import (
	"net/http"

	"item-api/internal/handler"
	"item-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	itemHandler *handler.ItemHandler,
	analyzeHandler *handler.AnalyzeHandler,
	systemHandler *handler.SystemHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware order: CorrelationID -> Recovery -> Logging -> CORS
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)
	r.Get("/ready", systemHandler.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		itemHandler.RegisterRoutes(r)
		r.Post("/analyze", analyzeHandler.Analyze)
	})

	return r
}
