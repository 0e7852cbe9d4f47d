package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	return line
}

func TestRequestLogging_RecordsStatusAndLevel(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", status: http.StatusBadGateway, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewJSONWriter(&buf, logging.LevelDebug)
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard", nil)
			RequestLogging(logger, next).ServeHTTP(httptest.NewRecorder(), req)

			line := decodeLogLine(t, &buf)
			assert.Equal(t, "http request", line["msg"])
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "/v1/leaderboard", line["path"])
			assert.EqualValues(t, tt.status, line["status"])
			assert.EqualValues(t, 4, line["bytes"])
		})
	}
}

func TestRequestLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONWriter(&buf, logging.LevelInfo)
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	RequestLogging(logger, next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	line := decodeLogLine(t, &buf)
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.EqualValues(t, 0, line["bytes"])
}

func TestRequireInternalJobToken(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
		wantNext   bool
	}{
		{name: "not configured", configured: " ", provided: "x", wantStatus: http.StatusServiceUnavailable},
		{name: "missing header", configured: "secret", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", configured: "secret", provided: "secreT", wantStatus: http.StatusUnauthorized},
		{name: "valid token", configured: "secret", provided: " secret ", wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodPost, "/v1/internal/seed", nil)
			if tt.provided != "" {
				req.Header.Set(internalJobTokenHeader, tt.provided)
			}
			rec := httptest.NewRecorder()

			RequireInternalJobToken(tt.configured, next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, reached)
		})
	}
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	recoverPanic(logging.NewNop(), next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leaderboard", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL"`)
	assert.NotContains(t, rec.Body.String(), "boom")
}
