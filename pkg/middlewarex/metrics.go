package middlewarex

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/zenazn/goji/web/mutil"

	"results_api/pkg/metrics"
)

// Metrics records request count and latency per chi route pattern. Requests
// that match no route are reported as "unmatched" to keep label cardinality
// bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := mutil.WrapWriter(w)

		next.ServeHTTP(lw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = lo.CoalesceOrEmpty(rctx.RoutePattern(), route)
		}

		status := strconv.Itoa(lo.CoalesceOrEmpty(lw.Status(), http.StatusOK))

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
