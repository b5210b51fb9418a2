package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage backend names accepted in DELVE_STORAGE
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig
	Delve   DelveConfig
	Log     LogConfig
}

// StorageConfig selects and parameterizes the session store
type StorageConfig struct {
	Kind       string // memory, redis, or sqlite
	RedisURL   string
	SQLitePath string
}

// DelveConfig holds the defaults a new delve starts with
type DelveConfig struct {
	Depth      int
	LightUnits int   // spare torches beyond the one burning
	Rations    int
	LairMode   bool
	Seed       int64 // 0 seeds the dice from the clock
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			Kind:       getEnvOrDefault("DELVE_STORAGE", StorageMemory),
			RedisURL:   getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
			SQLitePath: getEnvOrDefault("DELVE_SQLITE_PATH", "delve.db"),
		},
		Delve: DelveConfig{
			Depth:      getEnvAsIntOrDefault("DELVE_DEPTH", 1),
			LightUnits: getEnvAsIntOrDefault("DELVE_LIGHT", 6),
			Rations:    getEnvAsIntOrDefault("DELVE_RATIONS", 5),
			LairMode:   getEnvAsBoolOrDefault("DELVE_LAIR", false),
			Seed:       getEnvAsInt64OrDefault("DELVE_SEED", 0),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "console"),
		},
	}

	switch cfg.Storage.Kind {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return nil, fmt.Errorf("DELVE_STORAGE must be %s, %s, or %s; got %q",
			StorageMemory, StorageRedis, StorageSQLite, cfg.Storage.Kind)
	}

	if cfg.Delve.Depth < 1 {
		return nil, fmt.Errorf("DELVE_DEPTH must be at least 1, got %d", cfg.Delve.Depth)
	}
	if cfg.Delve.LightUnits < 0 || cfg.Delve.Rations < 0 {
		return nil, fmt.Errorf("DELVE_LIGHT and DELVE_RATIONS cannot be negative")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
