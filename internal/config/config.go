package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds all tool settings, populated from environment variables.
// Per-run knobs (lookback days, output location, verbosity) are CLI flags
// and live outside the Config.
type Config struct {
	APIBaseURL  string
	UserAgent   string
	HTTPTimeout time.Duration

	LogLevel  string
	LogFormat string

	// MetricsFile, when set, receives a Prometheus textfile-collector
	// snapshot of the job metrics after the run.
	MetricsFile string

	// Kafka publishing configuration. Disabled unless brokers are set;
	// the CSV export is unchanged either way.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("HTTP_TIMEOUT", "20s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		APIBaseURL:  envOrDefault("RANSOMWATCH_API_URL", "https://api.ransomware.live/v2"),
		UserAgent:   envOrDefault("RANSOMWATCH_USER_AGENT", "ransom_live_pull/1.0"),
		HTTPTimeout: timeout,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
		MetricsFile: os.Getenv("METRICS_FILE"),

		KafkaBrokers: brokers,
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "ransomware-victims"),
		KafkaEnabled: kafkaEnabled,
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("RANSOMWATCH_API_URL is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when Kafka publishing is enabled")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
