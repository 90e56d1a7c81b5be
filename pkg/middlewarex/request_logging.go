package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"results_api/pkg/logx"
)

// RequestLogging dumps every request except CORS pre-flights. Bodies are
// masked and cut to logFieldMaxLen bytes; zero disables the cut.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(truncate(sensitiveDataMasker.Mask(dump), logFieldMaxLen))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func truncate(dump []byte, maxLen int) []byte {
	if maxLen > 0 && len(dump) > maxLen {
		return dump[:maxLen]
	}

	return dump
}
