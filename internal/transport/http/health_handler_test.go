package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler("v1.2.3", "2026-08-23T00:00:00Z", slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    map[string]string
	}{
		{"liveness", h.LivenessCheck, map[string]string{"status": "alive"}},
		{"readiness", h.ReadinessCheck, map[string]string{"status": "ready"}},
		{"version", h.Version, map[string]string{"version": "v1.2.3", "build_time": "2026-08-23T00:00:00Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			for k, v := range tt.want {
				assert.Equal(t, v, body[k])
			}
		})
	}
}

func TestHealthCheck_ReportsUptime(t *testing.T) {
	h := NewHealthHandler("v1.2.3", "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["uptime"])
}
