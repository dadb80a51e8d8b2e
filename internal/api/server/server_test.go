package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgserver "github.com/DjordjeVuckovic/news-lens/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func TestHealthChecks(t *testing.T) {
	tests := []struct {
		name     string
		checker  pkgserver.HealthChecker
		wantCode int
		wantBody string
	}{
		{"healthy", pkgserver.NewOkHealthChecker(), http.StatusOK, `{"status":"ok"}`},
		{"unhealthy", downChecker{}, http.StatusServiceUnavailable, `{"status":"unhealthy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, tt.checker).
				SetupErrorHandler().
				SetupHealthChecks("/api/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("ANALYZE_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port not a number", map[string]string{"PORT": "abc"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"bad timeout", map[string]string{"PORT": "8080", "ANALYZE_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANALYZE_TIMEOUT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_Timeout(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ANALYZE_TIMEOUT", "45s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
}
