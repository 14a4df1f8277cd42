package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates application configuration values loaded from environment
// variables.
type Config struct {
	Env              string
	HTTPAddr         string
	KafkaBrokers     []string
	KafkaTopicPrefix string
	MaxRelevantLOS   int
	HorizonYears     int
}

// Load parses configuration from the current environment. Kafka brokers are
// optional; event publishing is disabled when none are configured.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
	}
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	maxLOS, err := parseIntEnv("MAX_RELEVANT_LOS", 7)
	if err != nil {
		return Config{}, err
	}
	if maxLOS < 1 {
		return Config{}, fmt.Errorf("MAX_RELEVANT_LOS must be positive, got %d", maxLOS)
	}
	cfg.MaxRelevantLOS = maxLOS

	horizon, err := parseIntEnv("HORIZON_YEARS", 2)
	if err != nil {
		return Config{}, err
	}
	if horizon < 1 {
		return Config{}, fmt.Errorf("HORIZON_YEARS must be positive, got %d", horizon)
	}
	cfg.HorizonYears = horizon

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return v, nil
}
