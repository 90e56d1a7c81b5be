package middlewarex

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSOptions lists what the API allows cross-origin callers to do.
type CORSOptions struct {
	AllowOrigin      string
	AllowCredentials bool
	AllowMethods     []string
	AllowHeaders     []string
}

// CORS sets the CORS headers on every response, error responses included,
// and answers pre-flight OPTIONS requests with an empty 200.
func CORS(opts CORSOptions) func(next http.Handler) http.Handler {
	allowMethods := strings.Join(opts.AllowMethods, ", ")
	allowHeaders := strings.Join(opts.AllowHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Credentials", strconv.FormatBool(opts.AllowCredentials))
			h.Set("Access-Control-Allow-Origin", opts.AllowOrigin)
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", allowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
