package handler

import (
	"log/slog"
	"net/http"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{logger: logger}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz is a liveness probe endpoint.
// The service has no dependencies, so it is healthy whenever it can answer.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"}, h.logger)
}
