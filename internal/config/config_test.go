package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "BACKEND_BASE_URL", "BACKEND_TIMEOUT", "RESUME_FALLBACK_ENABLED",
		"EXPORT_TIMEOUT", "EXPORT_POOL_SIZE", "EXPORT_REUSE_BROWSER", "OTEL_EXPORTER_OTLP_PROTOCOL", "OTEL_SERVICE_NAME"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.FallbackEnabled)
	assert.Empty(t, cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Export.Timeout)
	assert.Equal(t, 2, cfg.Export.PoolSize)
	assert.True(t, cfg.Export.ReuseBrowser)
	assert.Equal(t, "grpc", cfg.Tracing.Protocol)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BACKEND_BASE_URL", "http://resumes.internal:8080")
	t.Setenv("BACKEND_TIMEOUT", "2")
	t.Setenv("RESUME_FALLBACK_ENABLED", "false")
	t.Setenv("EXPORT_TIMEOUT", "90s")
	t.Setenv("EXPORT_POOL_SIZE", "4")
	t.Setenv("EXPORT_REUSE_BROWSER", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://resumes.internal:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.FallbackEnabled)
	assert.Equal(t, 90*time.Second, cfg.Export.Timeout)
	assert.Equal(t, 4, cfg.Export.PoolSize)
	assert.False(t, cfg.Export.ReuseBrowser)
	assert.Equal(t, "http/protobuf", cfg.Tracing.Protocol)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"PORT":                        "http",
		"LOG_LEVEL":                   "verbose",
		"BACKEND_BASE_URL":            "not a url",
		"EXPORT_POOL_SIZE":            "0",
		"OTEL_EXPORTER_OTLP_PROTOCOL": "zipkin",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "invalid")
	assert.True(t, getEnvBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_INT_VAR", "12x")
	assert.Equal(t, 10, getEnvInt("TEST_INT_VAR", 10))

	t.Setenv("TEST_DUR_VAR", "soon")
	assert.Equal(t, time.Second, getEnvDuration("TEST_DUR_VAR", time.Second))
	t.Setenv("TEST_DUR_VAR", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("TEST_DUR_VAR", time.Second))
}
