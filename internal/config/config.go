package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite file for the sqlite backend. Empty means the
	// default XDG location.
	DBPath string

	Store StoreConfig

	// Timezone names the IANA zone used for the legendary cache's day
	// check and the daily rotation job. Default: "UTC".
	Timezone string

	// Language is a BCP 47 tag for flavor text. Default: "en".
	Language string

	// Seed is the session seed of the shared random engine.
	Seed string

	// LogLevel is one of debug, info, warn, error. Default: "info".
	LogLevel string
}

// StoreConfig selects and configures the cache backend.
type StoreConfig struct {
	// Backend is one of "sqlite", "redis", "memory". Default: "sqlite".
	Backend     string
	RedisAddr   string // Default: "localhost:6379"
	RedisPrefix string // Default: "hatchery"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend:     BackendSQLite,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "hatchery",
		},
		Timezone: "UTC",
		Language: "en",
		Seed:     "hatchery",
		LogLevel: "info",
	}
}

// Load reads environment variables, optionally from envFile first, and
// returns a validated Config. A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("HATCHERY_DB"); p != "" {
		cfg.DBPath = p
	}
	if b := os.Getenv("HATCHERY_STORE"); b != "" {
		cfg.Store.Backend = b
	}
	if a := os.Getenv("HATCHERY_REDIS_ADDR"); a != "" {
		cfg.Store.RedisAddr = a
	}
	if p := os.Getenv("HATCHERY_REDIS_PREFIX"); p != "" {
		cfg.Store.RedisPrefix = p
	}
	if tz := os.Getenv("HATCHERY_TZ"); tz != "" {
		cfg.Timezone = tz
	}
	if l := os.Getenv("HATCHERY_LANG"); l != "" {
		cfg.Language = l
	}
	if s := os.Getenv("HATCHERY_SEED"); s != "" {
		cfg.Seed = s
	}
	if l := os.Getenv("HATCHERY_LOG_LEVEL"); l != "" {
		cfg.LogLevel = l
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return errors.New("HATCHERY_REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Seed == "" {
		return errors.New("HATCHERY_SEED must not be empty")
	}
	return nil
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
