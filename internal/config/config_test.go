package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.Database.Driver)
	assert.Equal(t, "@every 1m", cfg.Scheduler.Cron)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.SettlingTimeout)
	assert.Equal(t, 8, cfg.Scheduler.Concurrency)
	assert.Equal(t, 3, cfg.Scheduler.RetryAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.Scheduler.RetryBackoff)
	assert.Equal(t, "bet_settled", cfg.Kafka.TopicBetSettled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SCHEDULER_CRON", "*/5 * * * *")
	t.Setenv("SCHEDULER_SETTLING_TIMEOUT", "90s")
	t.Setenv("CRON_SECRET", "s3cret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "*/5 * * * *", cfg.Scheduler.Cron)
	assert.Equal(t, 90*time.Second, cfg.Scheduler.SettlingTimeout)
	assert.Equal(t, "s3cret", cfg.Auth.CronSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown storage driver", "STORAGE_DRIVER", "sqlite"},
		{"zero concurrency", "SCHEDULER_CONCURRENCY", "0"},
		{"negative retries", "SCHEDULER_RETRY_ATTEMPTS", "-1"},
		{"zero batch size", "SCHEDULER_BATCH_SIZE", "0"},
		{"malformed duration", "SCHEDULER_SETTLING_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", "memory")
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
