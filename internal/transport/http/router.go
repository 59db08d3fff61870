package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/smartcup-service/internal/metrics"
)

// NewRouter builds the HTTP surface: the catalog API, /healthz and /metrics.
func NewRouter(catalog *CatalogHandler, registry *metrics.Registry, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	catalog.Register(mux)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if registry != nil {
		mux.Handle("GET /metrics", registry.Handler())
	}

	return WithMetrics(mux, registry, logger)
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// WithMetrics counts requests by route pattern and status, and logs server errors.
func WithMetrics(next http.Handler, registry *metrics.Registry, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		registry.ObserveRequest("http", route, strconv.Itoa(rw.statusCode))

		if rw.statusCode >= http.StatusInternalServerError {
			logger.ErrorContext(r.Context(), "http request failed",
				slog.String("route", route),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
			)
		}
	})
}
