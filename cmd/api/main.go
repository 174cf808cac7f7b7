// Package main is the entrypoint for the time server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/penshort/timeserver/internal/clock"
	"github.com/penshort/timeserver/internal/config"
	"github.com/penshort/timeserver/internal/handler"
	"github.com/penshort/timeserver/internal/metrics"
	"github.com/penshort/timeserver/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	recorder := metrics.NewInMemory()

	r := handler.NewRouter(handler.RouterConfig{
		Clock:         clock.Real{},
		Metrics:       recorder,
		Logger:        logger,
		IsDevelopment: cfg.IsDevelopment(),
	})

	srv := server.New(
		r,
		server.DefaultAddr,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("metrics", logMetricsSnapshot(recorder, logger))

	logger.Info("starting server",
		"addr", srv.Addr(),
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// logMetricsSnapshot returns a shutdown hook that logs the final counters.
func logMetricsSnapshot(snapshotter metrics.Snapshotter, logger *slog.Logger) server.ShutdownFunc {
	return func(ctx context.Context) error {
		snap := snapshotter.Snapshot()
		logger.InfoContext(ctx, "final metrics",
			slog.Uint64("home_served", snap.HomeServed),
			slog.Uint64("time_served", snap.TimeServed),
			slog.Uint64("responses_2xx", snap.Responses2xx),
			slog.Uint64("responses_4xx", snap.Responses4xx),
			slog.Uint64("responses_5xx", snap.Responses5xx),
		)
		return nil
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
