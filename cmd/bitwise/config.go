package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config validation errors
var (
	ErrInvalidLogFormat     = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel      = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidVerifyWorkers = errors.New("verify_workers must be positive")
	ErrInvalidVerifyChunk   = errors.New("verify_chunk must be positive")
)

// Config is read from BITWISE_* environment variables.
type Config struct {
	LogFormat     string `envconfig:"LOG_FORMAT" default:"console"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"warn"`
	VerifyWorkers int    `envconfig:"VERIFY_WORKERS" default:"4"`
	VerifyChunk   int    `envconfig:"VERIFY_CHUNK" default:"4096"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		LogFormat:     "console",
		LogLevel:      "warn",
		VerifyWorkers: 4,
		VerifyChunk:   4096,
	}
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.VerifyWorkers <= 0 {
		return ErrInvalidVerifyWorkers
	}
	if cfg.VerifyChunk <= 0 {
		return ErrInvalidVerifyChunk
	}
	return nil
}

// LoadConfig loads envFile, if present, into the environment and then reads
// BITWISE_* variables. Variables already set take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process("BITWISE", &cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
