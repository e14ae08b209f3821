package middleware

import (
	"net/http"
	"time"

	"petster/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loguea una línea por request (después de servirlo).
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newStatusRecorder(w)

			next.ServeHTTP(rw, r)

			fields := map[string]any{
				"method":      r.Method,
				"route":       routePattern(r),
				"path":        r.URL.Path,
				"status":      rw.status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			if id := ShelterID(r.Context()); id != "" {
				fields["shelter_id"] = id
			}

			switch {
			case rw.status >= 500:
				log.Error("http request", fields)
			case rw.status >= 400:
				log.Warn("http request", fields)
			default:
				log.Debug("http request", fields)
			}
		})
	}
}
