package handler

import (
	"fmt"
	"net/http"

	"github.com/penshort/timeserver/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "timeserver_home_served_total %d\n", snap.HomeServed)
	writeMetric(w, "timeserver_time_served_total %d\n", snap.TimeServed)

	writeMetric(w, "timeserver_http_responses_total{class=\"2xx\"} %d\n", snap.Responses2xx)
	writeMetric(w, "timeserver_http_responses_total{class=\"4xx\"} %d\n", snap.Responses4xx)
	writeMetric(w, "timeserver_http_responses_total{class=\"5xx\"} %d\n", snap.Responses5xx)

	writeMetric(w, "timeserver_http_request_duration_seconds_count %d\n", snap.RequestDurationCount)
	writeMetric(w, "timeserver_http_request_duration_seconds_sum %.6f\n", float64(snap.RequestDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
