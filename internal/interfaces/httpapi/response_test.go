package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sports-challenge/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()

	var body googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, googleAPIVersion, body.APIVersion)
	assert.NotNil(t, body.Data)
	assert.Nil(t, body.Error)
}

func TestWriteError_MapsSentinels(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantStatus  string
		wantMessage string
	}{
		{
			name:        "invalid input",
			err:         fmt.Errorf("%w: limit must be <= 100", usecase.ErrInvalidInput),
			wantCode:    http.StatusBadRequest,
			wantStatus:  "INVALID_ARGUMENT",
			wantMessage: "invalid input: limit must be <= 100",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("%w: league=7", usecase.ErrNotFound),
			wantCode:    http.StatusNotFound,
			wantStatus:  "NOT_FOUND",
			wantMessage: "resource not found: league=7",
		},
		{
			name:        "dependency",
			err:         fmt.Errorf("seed: %w", usecase.ErrDependencyUnavailable),
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  "UNAVAILABLE",
			wantMessage: "seed: dependency unavailable",
		},
		{
			name:        "unmapped error hides message",
			err:         errors.New("pq: password authentication failed"),
			wantCode:    http.StatusInternalServerError,
			wantStatus:  "INTERNAL",
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			require.Equal(t, tt.wantCode, rec.Code)
			body := decodeBody(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantStatus, body.Error.Status)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			require.Len(t, body.Error.Errors, 1)
			assert.Equal(t, errorDomain, body.Error.Errors[0].Domain)
		})
	}
}
