package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads all config from env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("LISTEN_ADDR", ":9090")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		require.Equal(t, ":9090", cfg.ListenAddr)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("fails without database URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("defaults listen address", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("LISTEN_ADDR", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.ListenAddr)
	})

	t.Run("defaults session TTL to 72 hours", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 72*time.Hour, cfg.SessionTTL)
	})

	t.Run("parses session TTL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("SESSION_TTL_HOURS", "24")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	})

	t.Run("ignores invalid session TTL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("SESSION_TTL_HOURS", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 72*time.Hour, cfg.SessionTTL)
	})

	t.Run("defaults telemetry to off", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_EXPORTER", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, TelemetryOff, cfg.TelemetryExporter)
	})

	t.Run("rejects unknown telemetry exporter", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_EXPORTER", "jaeger")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "OTEL_EXPORTER")
	})

	t.Run("otlp exporter requires endpoint", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_EXPORTER", "otlp")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "OTEL_EXPORTER_OTLP_ENDPOINT")
	})

	t.Run("accepts otlp exporter with endpoint", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_EXPORTER", "otlp")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, TelemetryOTLP, cfg.TelemetryExporter)
		require.Equal(t, "http://localhost:4318", cfg.OTLPEndpoint)
	})
}
