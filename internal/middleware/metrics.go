package middleware

import (
	"net/http"
	"time"

	"github.com/penshort/timeserver/internal/metrics"
)

// Metrics returns a middleware that counts responses by status class
// and observes request duration.
func Metrics(recorder metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			recorder.IncResponse(rec.status)
			recorder.ObserveRequestDuration(time.Since(start))
		})
	}
}
