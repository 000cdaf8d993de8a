// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the full server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port"`

	// Storage selects and parameterizes the persistence backend.
	Storage StorageConfig `yaml:"storage"`

	// Auth configures planner login.
	Auth AuthConfig `yaml:"auth"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file (sqlite driver only).
	Path string `yaml:"path"`

	// DSN is the PostgreSQL connection string (postgres driver only).
	DSN string `yaml:"dsn"`
}

// AuthConfig configures JWT session tokens.
type AuthConfig struct {
	// JWTSecret signs session tokens. Required.
	JWTSecret string `yaml:"jwt_secret"`

	// TokenHours is how long tokens stay valid.
	TokenHours int `yaml:"token_hours"`
}

// Load reads configuration with defaults, then the YAML file named by
// WEDPLAN_CONFIG if set, then environment variable overrides.
func Load() (Config, error) {
	cfg := Config{
		Port: 8080,
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "data/wedplan.db",
		},
		Auth: AuthConfig{
			TokenHours: 24,
		},
		LogLevel: "info",
	}

	if path := os.Getenv("WEDPLAN_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("WEDPLAN_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("WEDPLAN_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("WEDPLAN_DB_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("WEDPLAN_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Storage.DSN == "" {
			return errors.New("storage.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q (want sqlite or postgres)", c.Storage.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (set WEDPLAN_JWT_SECRET)")
	}
	return nil
}
