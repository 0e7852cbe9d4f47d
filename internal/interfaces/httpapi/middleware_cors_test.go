package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	const dashboard = "https://sports-challenge.vercel.app"

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantVary   string
	}{
		{name: "listed origin reflected", allowed: []string{dashboard}, method: http.MethodGet, origin: dashboard, wantStatus: http.StatusOK, wantOrigin: dashboard, wantVary: "Origin"},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: dashboard, wantStatus: http.StatusNoContent, wantOrigin: "*"},
		{name: "unlisted origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: "https://not-allowed.example.com", wantStatus: http.StatusOK},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "blank entries ignored", allowed: []string{" ", ""}, method: http.MethodGet, origin: dashboard, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/v1/leaderboard", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantVary, rec.Header().Get("Vary"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), internalJobTokenHeader)
			}
		})
	}
}
