package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"apparel"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	// AMQPURL enables the cross-instance event relay when set.
	AMQPURL      string        `env:"AMQP_URL"`
	AMQPExchange string        `env:"AMQP_EXCHANGE" envDefault:"apparel.order-events"`
	RelayTimeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"2s"`

	LateScanSchedule string `env:"LATE_SCAN_SCHEDULE" envDefault:"0 */15 * * * *"`
	HubStatsSchedule string `env:"HUB_STATS_SCHEDULE" envDefault:"0 * * * * *"`

	WSBuffer       int           `env:"WS_BUFFER"        envDefault:"64"`
	WSWriteTimeout time.Duration `env:"WS_WRITE_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads an optional .env file at path and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.WSBuffer <= 0 {
		return Config{}, fmt.Errorf("WS_BUFFER must be positive, got %d", cfg.WSBuffer)
	}
	if cfg.RelayTimeout <= 0 {
		return Config{}, fmt.Errorf("RELAY_TIMEOUT must be positive, got %s", cfg.RelayTimeout)
	}
	if cfg.WSWriteTimeout <= 0 {
		return Config{}, fmt.Errorf("WS_WRITE_TIMEOUT must be positive, got %s", cfg.WSWriteTimeout)
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// RelayEnabled reports whether events are relayed to other instances over AMQP.
func (c Config) RelayEnabled() bool {
	return c.AMQPURL != ""
}
