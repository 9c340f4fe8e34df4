// Package config reads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ModelConfig selects the scoring model. An empty Path means no trained
// artifact is available and the service falls back to the heuristic scorer.
type ModelConfig struct {
	Path      string
	Threshold float64
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// TLSConfig enables TLS on the gRPC listener when both files are set.
type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// TelemetryConfig names the service for traces and metrics and points the
// span exporter at an OTLP collector.
type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	GRPCPort       int
	HTTPPort       int
	Model          ModelConfig
	Kafka          KafkaConfig
	GRPCTLS        TLSConfig
	GRPCReflection bool
	Telemetry      TelemetryConfig
	RateLimit      int // requests per second, 0 disables limiting
	Environment    string
	LogLevel       string
	LogFormat      string
}

func Load() Config {
	// Optional .env for local development. Real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		HTTPPort: getEnvInt("HTTP_PORT", 8000),
		Model: ModelConfig{
			Path:      getEnv("MODEL_PATH", ""),
			Threshold: getEnvFloat("THRESHOLD", 0.5),
		},
		Kafka: KafkaConfig{
			// No default broker: without KAFKA_BROKERS events go to the log.
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "scoring.events"),
		},
		GRPCTLS: TLSConfig{
			CertFile: getEnv("TLS_CERT_FILE", ""),
			KeyFile:  getEnv("TLS_KEY_FILE", ""),
		},
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  getEnv("SERVICE_NAME", "scoring-service"),
		},
		RateLimit:   getEnvInt("RATE_LIMIT", 100),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
