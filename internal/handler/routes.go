package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/penshort/timeserver/internal/clock"
	"github.com/penshort/timeserver/internal/metrics"
	"github.com/penshort/timeserver/internal/middleware"
)

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Clock clock.Clock
	// Metrics is both the Recorder fed by handlers and middleware
	// and the Snapshotter read by /metrics, hence the concrete type.
	Metrics       *metrics.InMemoryRecorder
	Logger        *slog.Logger
	IsDevelopment bool
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewInMemory()
	}

	h := New(cfg.Clock, cfg.Metrics, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.Logger)
	metricsHandler := NewMetricsHandler(cfg.Metrics)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(middleware.Recoverer(cfg.Logger, cfg.IsDevelopment))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(chimiddleware.GetHead)

	r.Get("/", h.Home)
	r.Get("/time", h.Time)

	// Operational endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/metrics", metricsHandler.Metrics)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
