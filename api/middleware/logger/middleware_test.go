package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/negroni/v3"
)

func serve(t *testing.T, status int, successLevel zerolog.Level) map[string]interface{} {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	n := negroni.New(
		NewZerologRequestIdMiddleware(),
		NewZerologRequestDetailsMiddleware(),
		NewZerologResponseLoggerMiddleware(successLevel),
	)
	n.UseHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	req = req.WithContext(logger.WithContext(req.Context()))
	n.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func Test_ResponseLogger(t *testing.T) {
	scenarios := []struct {
		status        int
		successLevel  zerolog.Level
		expectedLevel string
	}{
		{status: http.StatusOK, successLevel: zerolog.DebugLevel, expectedLevel: "debug"},
		{status: http.StatusOK, successLevel: zerolog.InfoLevel, expectedLevel: "info"},
		{status: http.StatusNotFound, successLevel: zerolog.DebugLevel, expectedLevel: "warn"},
		{status: http.StatusInternalServerError, successLevel: zerolog.DebugLevel, expectedLevel: "error"},
	}
	for _, ts := range scenarios {
		t.Run(http.StatusText(ts.status)+" "+ts.successLevel.String(), func(t *testing.T) {
			entry := serve(t, ts.status, ts.successLevel)
			assert.Equal(t, ts.expectedLevel, entry["level"])
			assert.Equal(t, float64(ts.status), entry["status"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/health/", entry["path"])
			assert.NotEmpty(t, entry["request_id"])
		})
	}
}
