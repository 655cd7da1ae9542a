package middleware

import (
	"net/http"
	"time"

	"dog-years/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog mete en el contexto un logger con request_id (de chimw.RequestID)
// y escribe una línea por request al terminar.
func AccessLog(base logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})
			ctx := logger.WithContext(r.Context(), l)

			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			l.Info("access log", map[string]any{
				"method":     r.Method,
				"url":        r.URL.String(),
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"latency":    time.Since(start).Seconds(),
				"client_ip":  r.RemoteAddr,
				"user_agent": r.UserAgent(),
			})
		})
	}
}
