package logs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, transport RoundTripperFunc) (*http.Response, error, map[string]interface{}) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/namespaces/flink/events", nil)
	req = req.WithContext(logger.WithContext(req.Context()))

	rt := Logger(func(e *zerolog.Event) { e.Str("client", "test") })(transport)
	resp, err := rt.RoundTrip(req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return resp, err, entry
}

func Test_Logger(t *testing.T) {
	globalLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(globalLevel)

	scenarios := []struct {
		status        int
		expectedLevel string
	}{
		{status: http.StatusOK, expectedLevel: "trace"},
		{status: http.StatusForbidden, expectedLevel: "warn"},
		{status: http.StatusServiceUnavailable, expectedLevel: "error"},
	}
	for _, ts := range scenarios {
		t.Run(http.StatusText(ts.status), func(t *testing.T) {
			resp, err, entry := roundTrip(t, func(r *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: ts.status, Request: r}, nil
			})
			require.NoError(t, err)
			assert.Equal(t, ts.status, resp.StatusCode)
			assert.Equal(t, ts.expectedLevel, entry["level"])
			assert.Equal(t, http.StatusText(ts.status), entry["message"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "test", entry["client"])
		})
	}
}

func Test_Logger_TransportError(t *testing.T) {
	resp, err, entry := roundTrip(t, func(r *http.Request) (*http.Response, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resp)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, assert.AnError.Error(), entry["error"])
}
