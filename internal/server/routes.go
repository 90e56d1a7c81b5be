package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"results_api/pkg/httpx/reply"
	"results_api/pkg/logx"
	"results_api/pkg/middlewarex"
)

const (
	resultsPath    = "/api/results"
	allowedMethods = "GET, POST, DELETE"
)

var corsOptions = middlewarex.CORSOptions{ //nolint:gochecknoglobals
	AllowOrigin:      "*",
	AllowCredentials: true,
	AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	AllowHeaders:     []string{"Content-Type"},
}

type Options struct {
	LogFieldMaxLen int
}

// Handler builds the router with the full middleware chain. CORS runs last
// so that every response, errors included, carries its headers.
func (s Server) Handler(opts Options) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Metrics,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
		middlewarex.CORS(corsOptions),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.MethodNotAllowed(methodNotAllowed)

	r.Get(resultsPath, handler(s.getResults))
	r.Post(resultsPath, handler(s.postResults))
	r.Delete(resultsPath, handler(s.deleteResults))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", allowedMethods)
	reply.Text(r.Context(), w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", r.Method))
}
