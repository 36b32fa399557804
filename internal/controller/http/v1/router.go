package v1

import (
	"github.com/go-chi/chi"

	"github.com/radiophysiker/urlshortener/internal/handlers"
	"github.com/radiophysiker/urlshortener/internal/metrics"
	"github.com/radiophysiker/urlshortener/internal/middleware"
)

// NewRouter creates a new router for the v1 API.
func NewRouter(
	createHandler *handlers.CreateHandler,
	getHandler *handlers.GetHandler,
	pingHandler *handlers.PingHandler,
	m *metrics.Metrics,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Metrics(m))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.GzipMiddleware)

	r.Post("/", createHandler.CreateShortURL)
	r.Get("/ping", pingHandler.Ping)
	r.Method("GET", "/metrics", m.Handler())
	r.Get("/{id}", getHandler.GetFullURL)
	r.Post("/api/shorten", createHandler.CreateShortURLWithJSON)
	return r
}
