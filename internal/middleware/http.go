package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	chi_middleware "github.com/go-chi/chi/v5/middleware"

	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
)

// Logging logs each request once it completes, with the wrapped status code
// and duration.
func Logging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("Request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.String("request_id", chi_middleware.GetReqID(r.Context())),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

// Metrics records request counts and latencies per route pattern.
func Metrics(provider metrics.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := strconv.Itoa(ww.Status())
			provider.IncrementHTTPRequests(r.Method, r.URL.Path, status)
			provider.RecordHTTPRequestDuration(r.Method, r.URL.Path, status, time.Since(start))
		})
	}
}
