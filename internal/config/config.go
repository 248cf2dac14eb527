package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Seed    SeedConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"VDRAFT_SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"VDRAFT_SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"VDRAFT_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"VDRAFT_SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"VDRAFT_SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `envconfig:"VDRAFT_LOG_LEVEL" default:"info"`
}

// StorageConfig holds storage backend settings.
type StorageConfig struct {
	Type string `envconfig:"VDRAFT_STORAGE_TYPE" default:"memory"` // memory, redis, or sqlite

	RedisURL          string `envconfig:"VDRAFT_REDIS_URL" default:"redis://localhost:6379"`
	RedisPoolSize     int    `envconfig:"VDRAFT_REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int    `envconfig:"VDRAFT_REDIS_MIN_IDLE_CONNS" default:"2"`

	SQLitePath string `envconfig:"VDRAFT_SQLITE_PATH" default:"./data/volleydraft.db"`
}

// SeedConfig holds catalog seeding settings.
type SeedConfig struct {
	Seed        int64 `envconfig:"VDRAFT_SEED" default:"42"`
	PlayerCount int   `envconfig:"VDRAFT_SEED_PLAYER_COUNT" default:"35"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SlogLevel maps the configured level name to a slog level.
// Unknown names fall back to info.
func (l *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
