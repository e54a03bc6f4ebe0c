package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Scheduler SchedulerConfig
	Auth      AuthConfig
	Log       LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Driver          string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"sportsbook"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type RedisConfig struct {
	// Addr empty disables the balance cache
	Addr       string        `env:"REDIS_ADDR"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	BalanceTTL time.Duration `env:"REDIS_BALANCE_TTL" envDefault:"5m"`
}
type KafkaConfig struct {
	// Brokers empty disables settlement events
	Brokers         []string `env:"KAFKA_BROKERS" envSeparator:","`
	TopicBetSettled string   `env:"KAFKA_TOPIC_BET_SETTLED" envDefault:"bet_settled"`
}
type SchedulerConfig struct {
	Enabled          bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	Cron             string        `env:"SCHEDULER_CRON" envDefault:"@every 1m"`
	RecoveryInterval time.Duration `env:"SCHEDULER_RECOVERY_INTERVAL" envDefault:"1m"`
	SettlingTimeout  time.Duration `env:"SCHEDULER_SETTLING_TIMEOUT" envDefault:"5m"`
	Concurrency      int           `env:"SCHEDULER_CONCURRENCY" envDefault:"8"`
	RetryAttempts    int           `env:"SCHEDULER_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBackoff     time.Duration `env:"SCHEDULER_RETRY_BACKOFF" envDefault:"200ms"`
	BatchSize        int           `env:"SCHEDULER_BATCH_SIZE" envDefault:"500"`
}
type AuthConfig struct {
	CronSecret string `env:"CRON_SECRET"`
}
type LogConfig struct {
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q", c.Database.Driver)
	}
	if c.Scheduler.Concurrency < 1 {
		return fmt.Errorf("SCHEDULER_CONCURRENCY must be positive, got %d", c.Scheduler.Concurrency)
	}
	if c.Scheduler.RetryAttempts < 0 {
		return fmt.Errorf("SCHEDULER_RETRY_ATTEMPTS must not be negative, got %d", c.Scheduler.RetryAttempts)
	}
	if c.Scheduler.BatchSize < 1 {
		return fmt.Errorf("SCHEDULER_BATCH_SIZE must be positive, got %d", c.Scheduler.BatchSize)
	}
	return nil
}
