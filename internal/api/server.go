// Package api provides the REST API server for the catalog.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	v0 "github.com/stacklok/readmode-server/internal/api/v0"
	"github.com/stacklok/readmode-server/internal/service"
)

// ServerOption configures the catalog API server
type ServerOption func(*serverConfig)

type serverConfig struct {
	middlewares    []func(http.Handler) http.Handler
	metricsHandler http.Handler
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithMetricsHandler serves h on /metrics. A nil handler is ignored.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metricsHandler = h
	}
}

// NewServer creates and configures the HTTP router with the given service and options
func NewServer(svc service.CatalogService, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{
		middlewares: []func(http.Handler) http.Handler{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()

	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Mount("/", v0.HealthRouter(svc))
	if cfg.metricsHandler != nil {
		r.Handle("/metrics", cfg.metricsHandler)
	}
	r.Mount("/v0", v0.Router(svc))

	return r
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.DebugContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
