// Package config assembles runtime configuration from an optional YAML file
// overlaid with environment variables so main stays lean.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr       string    `yaml:"addr"`
	DataDir    string    `yaml:"data_dir"`
	BcryptCost int       `yaml:"bcrypt_cost"`
	LogLevel   string    `yaml:"log_level"`
	RateLimit  RateLimit `yaml:"rate_limit"`
}

// RateLimit configures the per-client token bucket on the public API.
type RateLimit struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Addr:       ":8080",
		DataDir:    "data",
		BcryptCost: bcrypt.DefaultCost,
		LogLevel:   "info",
		RateLimit:  RateLimit{PerSecond: 20, Burst: 40},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// non-empty), then environment variables. Environment always wins so
// deployments can override a checked-in file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("ENROLLD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("ENROLLD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ENROLLD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ENROLLD_BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse ENROLLD_BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("bcrypt cost %d outside [%d, %d]", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cfg, nil
}

// FromEnv loads configuration using the ENROLLD_CONFIG file if set.
func FromEnv() (Config, error) {
	return Load(os.Getenv("ENROLLD_CONFIG"))
}

// SlogLevel translates the configured level name; unknown names fall back
// to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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
