// Package lambdax runs a plain http.Handler behind AWS Lambda, one
// invocation per request, for API Gateway HTTP APIs (payload format 2.0).
package lambdax

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

type Adapter struct {
	handler http.Handler
}

func NewAdapter(handler http.Handler) Adapter {
	return Adapter{handler: handler}
}

// Handle is the function passed to lambda.Start.
func (a Adapter) Handle(
	ctx context.Context,
	event events.APIGatewayV2HTTPRequest,
) (events.APIGatewayV2HTTPResponse, error) {
	r, err := newRequest(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("newRequest: %w", err)
	}

	w := newResponseWriter()

	a.handler.ServeHTTP(w, r)

	return w.response(), nil
}

func newRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(event.Body)

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("base64.DecodeString: %w", err)
		}

		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = "/"
	}

	target := &url.URL{Path: path, RawQuery: event.RawQueryString}

	r, err := http.NewRequestWithContext(ctx, event.RequestContext.HTTP.Method, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for k, v := range event.Headers {
		r.Header.Set(k, v)
	}

	if len(event.Cookies) > 0 {
		r.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}

	if len(body) == 0 {
		r.Body = http.NoBody
	}

	r.ContentLength = int64(len(body))
	r.RemoteAddr = event.RequestContext.HTTP.SourceIP
	r.Host = r.Header.Get("Host")
	r.RequestURI = target.RequestURI()

	return r, nil
}

type responseWriter struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: make(http.Header)}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}

	return w.body.Write(b) //nolint:wrapcheck
}

func (w *responseWriter) WriteHeader(status int) {
	if w.status != 0 {
		return
	}

	w.status = status
}

func (w *responseWriter) response() events.APIGatewayV2HTTPResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := events.APIGatewayV2HTTPResponse{
		StatusCode:        status,
		Headers:           make(map[string]string, len(w.header)),
		MultiValueHeaders: make(map[string][]string),
	}

	for k, values := range w.header {
		if k == "Set-Cookie" {
			resp.Cookies = values

			continue
		}

		resp.Headers[k] = strings.Join(values, ", ")

		if len(values) > 1 {
			resp.MultiValueHeaders[k] = values
		}
	}

	if utf8.Valid(w.body.Bytes()) {
		resp.Body = w.body.String()
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(w.body.Bytes())
		resp.IsBase64Encoded = true
	}

	return resp
}
