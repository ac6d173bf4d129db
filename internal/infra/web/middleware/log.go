package middleware

import (
	"net/http"
	"time"

	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger writes one entry per request. Server errors are logged at
// error level and client errors at warn, so failed checkouts stand out from
// regular traffic.
func RequestLogger(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := statusOf(ww.Status())
			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("route", routePattern(r)),
				logger.String("path", r.URL.Path),
				logger.String("request_id", middleware.GetReqID(r.Context())),
				logger.Int("status", status),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error(r.Context(), "request failed", fields...)
			case status >= http.StatusBadRequest:
				log.Warn(r.Context(), "request rejected", fields...)
			default:
				log.Info(r.Context(), "request served", fields...)
			}
		})
	}
}
