package middlewarex

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"results_api/pkg/httpx/reply"
	"results_api/pkg/logx"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Error(ctx, w, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
