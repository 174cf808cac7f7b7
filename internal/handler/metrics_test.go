package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/penshort/timeserver/internal/metrics"
)

func TestMetricsHandler_Exposition(t *testing.T) {
	recorder := metrics.NewInMemory()
	recorder.IncHomeServed()
	recorder.IncTimeServed()
	recorder.IncTimeServed()
	recorder.IncResponse(http.StatusOK)
	recorder.IncResponse(http.StatusNotFound)
	recorder.ObserveRequestDuration(1500 * time.Millisecond)

	h := NewMetricsHandler(recorder)
	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, line := range []string{
		"timeserver_home_served_total 1\n",
		"timeserver_time_served_total 2\n",
		"timeserver_http_responses_total{class=\"2xx\"} 1\n",
		"timeserver_http_responses_total{class=\"4xx\"} 1\n",
		"timeserver_http_responses_total{class=\"5xx\"} 0\n",
		"timeserver_http_request_duration_seconds_count 1\n",
		"timeserver_http_request_duration_seconds_sum 1.500000\n",
	} {
		if !strings.Contains(body, line) {
			t.Errorf("expected %q in output:\n%s", line, body)
		}
	}
}

func TestMetricsHandler_NoSnapshotter(t *testing.T) {
	h := NewMetricsHandler(nil)
	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}
}
