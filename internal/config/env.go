package config

import (
	"os"
	"strings"
)

// Env is the process configuration read from environment variables.
type Env struct {
	IdempotencyTable string
	QueueURL         string
	RunLocal         bool
	HTTPAddr         string
	SettingsFile     string
	MetricsNamespace string
	LogLevel         string
	Environment      string
	Version          string
}

// FromEnv reads Env, applying defaults for optional values.
func FromEnv() Env {
	return Env{
		IdempotencyTable: os.Getenv("IDEMPOTENCY_TABLE"),
		QueueURL:         os.Getenv("LABEL_REQUEST_QUEUE_URL"),
		RunLocal:         os.Getenv("RUN_LOCAL") == "true",
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		SettingsFile:     os.Getenv("SETTINGS_FILE"),
		MetricsNamespace: getenv("METRICS_NAMESPACE", "LabelFlow"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		Environment:      getenv("APP_ENV", "development"),
		Version:          getenv("APP_VERSION", "dev"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
