// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Telemetry exporter modes.
const (
	TelemetryOff    = "off"
	TelemetryStdout = "stdout"
	TelemetryOTLP   = "otlp"
)

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL       string
	ListenAddr        string
	LogLevel          string
	LogFormat         string
	SessionTTL        time.Duration
	TelemetryExporter string
	OTLPEndpoint      string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		ListenAddr:        os.Getenv("LISTEN_ADDR"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		LogFormat:         os.Getenv("LOG_FORMAT"),
		TelemetryExporter: os.Getenv("OTEL_EXPORTER"),
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.TelemetryExporter == "" {
		cfg.TelemetryExporter = TelemetryOff
	}

	cfg.SessionTTL = 72 * time.Hour
	if ttlStr := os.Getenv("SESSION_TTL_HOURS"); ttlStr != "" {
		if h, err := strconv.Atoi(ttlStr); err == nil && h > 0 {
			cfg.SessionTTL = time.Duration(h) * time.Hour
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	switch c.TelemetryExporter {
	case TelemetryOff, TelemetryStdout, TelemetryOTLP:
	default:
		errs = append(errs, fmt.Sprintf("OTEL_EXPORTER must be one of off, stdout, otlp (got %q)", c.TelemetryExporter))
	}

	if c.TelemetryExporter == TelemetryOTLP && c.OTLPEndpoint == "" {
		errs = append(errs, "OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_EXPORTER=otlp")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
