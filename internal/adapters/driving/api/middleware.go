package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/custodia-labs/kmlpser/internal/logger"
	"github.com/custodia-labs/kmlpser/internal/metrics"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// instrument records an access log line and request metrics.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// The mux fills in Pattern on the shared request.
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := float64(time.Since(start).Microseconds()) / 1000

		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDurationMs.WithLabelValues(route).Observe(elapsed)
		logger.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", elapsed,
		)
	})
}

// rateLimit rejects requests beyond the token bucket with 429.
// Health and metrics probes are never throttled.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
