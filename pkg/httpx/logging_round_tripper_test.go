package httpx_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"results_api/pkg/contextx"
	"results_api/pkg/httpx"
	"results_api/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const submission = `{"name":"Ann","phone":"555-0100","liked":["latte"]}`

// resultsStub answers like the results endpoint: it echoes POST bodies with
// 201, fails DELETE and lists nothing otherwise.
func resultsStub(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Echo-Trace-Id", r.Header.Get("X-Trace-Id"))

	switch r.Method {
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write(body) //nolint:errcheck
	case http.MethodDelete:
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Error clearing data."}`)) //nolint:errcheck
	default:
		w.Write([]byte(`[]`)) //nolint:errcheck
	}
}

type roundTripLogs struct {
	request  map[string]any
	response map[string]any
}

func (l roundTripLogs) requestDump() string {
	return l.request[logx.FieldRequestBody].(string)
}

func (l roundTripLogs) responseDump() string {
	return l.response[logx.FieldResponseBody].(string)
}

func doRoundTrip(
	t *testing.T,
	ctx context.Context,
	method string,
	body string,
	opts ...httpx.Option,
) (*http.Response, roundTripLogs) {
	t.Helper()

	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(resultsStub))
	t.Cleanup(httpServer.Close)

	var buf bytes.Buffer

	ctx = contextx.WithLogger(ctx, slog.New(slog.NewJSONHandler(&buf, nil)))

	client := &http.Client{Transport: httpx.NewLoggingRoundTripper(nil, opts...)}

	req, err := http.NewRequestWithContext(ctx, method, httpServer.URL+"/api/results", strings.NewReader(body))
	rq.NoError(err)

	resp, err := client.Do(req)
	rq.NoError(err)
	t.Cleanup(func() { resp.Body.Close() })

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	rq.Len(lines, 2)

	var logs roundTripLogs

	rq.NoError(json.Unmarshal(lines[0], &logs.request))
	rq.NoError(json.Unmarshal(lines[1], &logs.response))

	const xidLen = 20

	rq.Len(logs.request[logx.FieldRequestID], xidLen)
	rq.Equal(logs.request[logx.FieldRequestID], logs.response[logx.FieldRequestID])
	rq.InDelta(float64(resp.StatusCode), logs.response[logx.FieldResponseStatus], 0)

	_, ok := logs.response[logx.FieldDurationMs].(float64)
	rq.True(ok)

	return resp, logs
}

func TestLoggingRoundTripper_Statuses(t *testing.T) {
	testCases := []struct {
		method     string
		body       string
		statusCode int
		status     string
		respBody   string
	}{
		{method: http.MethodGet, statusCode: http.StatusOK, status: "200 OK", respBody: `[]`},
		{method: http.MethodPost, body: submission, statusCode: http.StatusCreated, status: "201 Created", respBody: submission},
		{
			method:     http.MethodDelete,
			statusCode: http.StatusInternalServerError,
			status:     "500 Internal Server Error",
			respBody:   `{"message":"Error clearing data."}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.method, func(t *testing.T) {
			rq := require.New(t)

			resp, logs := doRoundTrip(t, context.Background(), tc.method, tc.body)
			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Contains(logs.requestDump(), tc.method+" /api/results HTTP/1.1")
			rq.Contains(logs.responseDump(), "HTTP/1.1 "+tc.status)
			rq.Contains(logs.responseDump(), tc.respBody)

			// The dump must not consume the body handed back to the caller.
			body, err := io.ReadAll(resp.Body)
			rq.NoError(err)
			rq.Equal(tc.respBody, string(body))
		})
	}
}

func TestLoggingRoundTripper_Masking(t *testing.T) {
	rq := require.New(t)

	_, logs := doRoundTrip(t, context.Background(), http.MethodPost, submission,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	for _, dump := range []string{logs.requestDump(), logs.responseDump()} {
		rq.NotContains(dump, "555-0100")
		rq.NotContains(dump, `"Ann"`)
		rq.Contains(dump, `"liked":["latte"]`)
	}
}

func TestLoggingRoundTripper_MaskerMock(t *testing.T) {
	rq := require.New(t)

	masker := &httpx.SensitiveDataMaskerMock{
		MaskFunc: func(input []byte) []byte {
			return bytes.ReplaceAll(input, []byte("latte"), []byte("<...>"))
		},
	}

	_, logs := doRoundTrip(t, context.Background(), http.MethodPost, submission,
		httpx.WithSensitiveDataMasker(masker),
	)

	rq.Len(masker.MaskCalls(), 2)
	rq.Contains(logs.requestDump(), `"liked":["<...>"]`)
	rq.Contains(logs.responseDump(), `"liked":["<...>"]`)
}

func TestLoggingRoundTripper_TraceID(t *testing.T) {
	rq := require.New(t)

	ctx := contextx.WithTraceID(context.Background(), "cv37b1rk0ds1rf4t2s10")

	resp, logs := doRoundTrip(t, ctx, http.MethodGet, "")
	rq.Equal("cv37b1rk0ds1rf4t2s10", resp.Header.Get("X-Echo-Trace-Id"))
	rq.Contains(logs.requestDump(), "X-Trace-Id: cv37b1rk0ds1rf4t2s10")
}

func TestLoggingRoundTripper_LogFieldMaxLen(t *testing.T) {
	rq := require.New(t)

	_, logs := doRoundTrip(t, context.Background(), http.MethodPost, submission,
		httpx.WithLogFieldMaxLen(10),
	)

	rq.Equal("POST /api/", logs.requestDump())
	rq.Equal("HTTP/1.1 2", logs.responseDump())
}
