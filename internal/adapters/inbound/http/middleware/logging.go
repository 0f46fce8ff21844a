package middleware

import (
	"net/http"
	"time"

	"github.com/architeacher/inventory/pkg/logger"
)

type AccessLogger struct {
	logger logger.Logger
}

func NewAccessLogger(log logger.Logger) *AccessLogger {
	return &AccessLogger{logger: log}
}

func (a *AccessLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldSkipAccessLog(r.Context()) {
			next.ServeHTTP(w, r)

			return
		}

		start := time.Now()
		wrapped := NewStatusRecorder(w)

		next.ServeHTTP(wrapped, r)

		reqLogger := a.logger.WithContext(r.Context()).
			With().
			Str("component", "http").
			Logger()

		event := reqLogger.Info()
		if wrapped.StatusCode() >= http.StatusInternalServerError {
			event = reqLogger.Error()
		} else if wrapped.StatusCode() >= http.StatusBadRequest {
			event = reqLogger.Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("status", wrapped.StatusCode()).
			Uint64("bytes", wrapped.BytesWritten()).
			Int64("duration_ms", time.Since(start).Milliseconds())

		if r.URL.RawQuery != "" {
			event.Str("query", r.URL.RawQuery)
		}

		event.Msg("request completed")
	})
}
