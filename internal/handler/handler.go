// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/penshort/timeserver/internal/clock"
	"github.com/penshort/timeserver/internal/metrics"
)

// WelcomeMessage is the body served at GET /.
const WelcomeMessage = "Welcome! Try /time for the current time."

// TimeLayout formats wall-clock time as YYYY-MM-DD HH:MM:SS.
const TimeLayout = "2006-01-02 15:04:05"

// Handler serves the public endpoints.
type Handler struct {
	clock   clock.Clock
	metrics metrics.Recorder
	logger  *slog.Logger
}

// New creates a new Handler instance.
// A nil clock falls back to the system clock and a nil recorder to a no-op.
func New(c clock.Clock, recorder metrics.Recorder, logger *slog.Logger) *Handler {
	if c == nil {
		c = clock.Real{}
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		clock:   c,
		metrics: recorder,
		logger:  logger,
	}
}

// TimeResponse is the body of GET /time.
type TimeResponse struct {
	CurrentTime string `json:"current_time"`
}

// Home returns the welcome message.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncHomeServed()
	h.writeText(w, http.StatusOK, WelcomeMessage)
}

// Time returns the current local wall-clock time.
// The clock is read on every call.
// GET /time
func (h *Handler) Time(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncTimeServed()
	h.writeJSON(w, http.StatusOK, TimeResponse{
		CurrentTime: h.clock.Now().Format(TimeLayout),
	})
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "resource not found",
	})
}

// MethodNotAllowed handles 405 responses.
// The Allow header lists the methods the matched path accepts.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if allow := allowedMethods(r); len(allow) > 0 {
		w.Header().Set("Allow", strings.Join(allow, ", "))
	}
	h.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

// candidateMethods are checked, in order, when building an Allow header.
var candidateMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// allowedMethods resolves the methods routed for r's path.
// GET implies HEAD because the router serves HEAD through GetHead.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}

	var allow []string
	for _, method := range candidateMethods {
		if rctx.Routes.Match(chi.NewRouteContext(), method, path) {
			allow = append(allow, method)
			if method == http.MethodGet {
				allow = append(allow, http.MethodHead)
			}
		}
	}
	return allow
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data, h.logger)
}

func (h *Handler) writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Debug("failed to write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
