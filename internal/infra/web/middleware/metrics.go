package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DioGolang/GoCheckout/pkg/metrics"
	"github.com/go-chi/chi/v5/middleware"
)

// HTTPMetrics observes request latency per method, route pattern and status.
// Requests that match no route share the "unmatched" label so unknown paths
// cannot grow the series count.
func HTTPMetrics(m metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			m.ObserveHTTPRequestDuration(
				r.Method,
				routePattern(r),
				strconv.Itoa(statusOf(ww.Status())),
				time.Since(start).Seconds(),
			)
		})
	}
}
