package middleware

import (
	"net/http"
	"time"

	"yield-ai/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID devuelve el id que puso chimw.RequestID en el header X-Request-Id,
// así el cliente puede reportarlo. Va después de chimw.RequestID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLogger loguea una línea por request con status y duración.
// Los requests que el cliente abandonó van a debug.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}

			switch {
			case r.Context().Err() != nil:
				log.Debug("request abandoned by client", fields)
			case status >= 500:
				log.Error("request failed", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}
