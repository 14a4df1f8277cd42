package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Empty(t, cfg.KafkaBrokers)
	require.Equal(t, 7, cfg.MaxRelevantLOS)
	require.Equal(t, 2, cfg.HorizonYears)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("MAX_RELEVANT_LOS", "14")
	t.Setenv("HORIZON_YEARS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 14, cfg.MaxRelevantLOS)
	require.Equal(t, 3, cfg.HorizonYears)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("MAX_RELEVANT_LOS", "zero")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveWindow(t *testing.T) {
	t.Setenv("MAX_RELEVANT_LOS", "0")
	_, err := Load()
	require.Error(t, err)
}
