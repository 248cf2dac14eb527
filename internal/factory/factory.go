package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/volleydraft-go/internal/dependencies/clock"
	"github.com/mcoot/volleydraft-go/internal/dependencies/random"
	"github.com/mcoot/volleydraft-go/internal/services/auth"
	"github.com/mcoot/volleydraft-go/internal/services/catalog"
	"github.com/mcoot/volleydraft-go/internal/services/roster"
	"github.com/mcoot/volleydraft-go/internal/services/seed"
	"github.com/mcoot/volleydraft-go/internal/storage"
	"github.com/mcoot/volleydraft-go/internal/storage/memory"
	redisstorage "github.com/mcoot/volleydraft-go/internal/storage/redis"
	"github.com/mcoot/volleydraft-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// DefaultSeed drives catalog generation when no seed is configured,
// so fresh deployments produce the same players
const DefaultSeed = 42

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	CatalogService *catalog.Service
	RosterService  *roster.Service
	SeedService    *seed.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// SeedConfig holds configuration for the seed service (optional)
	// If zero value, defaults to seed.DefaultConfig()
	SeedConfig seed.Config
	// Seed is the source for generated catalog data (optional)
	// If zero, defaults to DefaultSeed
	Seed int64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis", or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis', or 'sqlite'")
	}

	// Create external dependencies
	clk := clock.New()
	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = DefaultSeed
	}
	rnd := random.NewSeeded(seedValue)

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, cfg.SeedConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, seedCfg seed.Config, logger *slog.Logger) *App {
	// Create services
	catalogService := catalog.New(store)
	rosterService := roster.New(store, catalogService, clk, logger)
	authService := auth.New(store, clk, authCfg)
	seedService := seed.New(store, clk, rnd, logger, seedCfg)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthService:    authService,
		CatalogService: catalogService,
		RosterService:  rosterService,
		SeedService:    seedService,
	}
}
