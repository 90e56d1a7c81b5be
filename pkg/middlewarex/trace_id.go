package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"results_api/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"
	maxTraceIDLen     = 64
)

// TraceID reuses the caller's X-Trace-Id when it is sane and mints an xid
// otherwise. The id is echoed back in the response headers.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
