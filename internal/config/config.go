package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// BackendConfig points at the resume backend. An empty BaseURL means the
// backend is not configured.
type BackendConfig struct {
	BaseURL string        `validate:"omitempty,http_url"`
	Timeout time.Duration `validate:"gt=0"`
}

// DatabaseConfig is the optional read-only Postgres resume source, used only
// when no backend URL is set.
type DatabaseConfig struct {
	URL string
}

type ExportConfig struct {
	ChromePath   string
	Timeout      time.Duration `validate:"gt=0"`
	PoolSize     int           `validate:"min=1,max=32"`
	ReuseBrowser bool
}

type TracingConfig struct {
	Disabled    bool
	Protocol    string `validate:"oneof=grpc http/protobuf"`
	ServiceName string `validate:"required"`
}

// AppConfig is populated from environment variables. A .env file is
// auto-loaded by the entrypoint through godotenv/autoload; real environment
// variables take precedence.
type AppConfig struct {
	Port            string `validate:"required,numeric"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	FallbackEnabled bool
	Backend         BackendConfig
	Database        DatabaseConfig
	Export          ExportConfig
	Tracing         TracingConfig
}

// Load reads and validates the configuration.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:            getEnv("PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FallbackEnabled: getEnvBool("RESUME_FALLBACK_ENABLED", true),
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", ""),
			Timeout: getEnvDuration("BACKEND_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			URL: getEnv("RESUME_DATABASE_URL", ""),
		},
		Export: ExportConfig{
			ChromePath:   getEnv("CHROME_PATH", ""),
			Timeout:      getEnvDuration("EXPORT_TIMEOUT", 60*time.Second),
			PoolSize:     getEnvInt("EXPORT_POOL_SIZE", 2),
			ReuseBrowser: getEnvBool("EXPORT_REUSE_BROWSER", true),
		},
		Tracing: TracingConfig{
			Disabled:    getEnvBool("OTEL_SDK_DISABLED", false),
			Protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "resume-export"),
		},
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s") or bare seconds ("90").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return def
}
