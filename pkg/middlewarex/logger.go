package middlewarex

import (
	"log/slog"
	"net/http"

	"results_api/pkg/contextx"
	"results_api/pkg/logx"
)

// Logger attaches a request-scoped logger to the context. It must run after
// TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			slog.String(logx.FieldURL, r.URL.Path),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		traceID, err := contextx.TraceIDFromContext(ctx)
		if err != nil {
			logger(ctx).Error("contextx.TraceIDFromContext", logx.Error(err))
		} else {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
