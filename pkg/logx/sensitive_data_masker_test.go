package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"results_api/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Submission",
			input:  []byte(`{"name":"Alice","phone":"555","company":"Acme","liked":["a","b"]}`),
			output: []byte(`{"name":"[MASKED]","phone":"[MASKED]","company":"[MASKED]","liked":["a","b"]}`),
		},
		{
			name:   "Stored row",
			input:  []byte(`[{"id":1,"name": "Bob","phone": "777","company_name":"Initech","liked_items":"[\"x\"]"}]`),
			output: []byte(`[{"id":1,"name": "[MASKED]","phone": "[MASKED]","company_name":"[MASKED]","liked_items":"[\"x\"]"}]`),
		},
		{
			name:   "Null company is left alone",
			input:  []byte(`{"company_name":null}`),
			output: []byte(`{"company_name":null}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
