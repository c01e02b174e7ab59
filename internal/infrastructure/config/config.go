// Package config loads verification and logging settings from the
// environment.
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - VERIFY_WORKERS, VERIFY_FORMAT, VERIFY_MAX_FAILURES
//   - VERIFY_FUNCTIONS (comma separated), VERIFY_FAIL_FAST
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	runner := verify.NewRunner(cfg.Verify, logger, metrics)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// ErrInvalid marks a configuration that loaded but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Report formats accepted by VERIFY_FORMAT.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Verify  VerifyConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// VerifyConfig controls a verification run.
type VerifyConfig struct {
	Workers     int      `envconfig:"VERIFY_WORKERS" default:"4"`
	Format      string   `envconfig:"VERIFY_FORMAT" default:"json"`
	MaxFailures int      `envconfig:"VERIFY_MAX_FAILURES" default:"20"`
	Functions   []string `envconfig:"VERIFY_FUNCTIONS"`
	FailFast    bool     `envconfig:"VERIFY_FAIL_FAST" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Verify.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level: "info",
		},
		Verify: VerifyConfig{
			Workers:     4,
			Format:      FormatJSON,
			MaxFailures: 20,
		},
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Verify.Workers < 1 {
		return fmt.Errorf("%w: VERIFY_WORKERS must be at least 1, got %d", ErrInvalid, c.Verify.Workers)
	}
	if c.Verify.MaxFailures < 0 {
		return fmt.Errorf("%w: VERIFY_MAX_FAILURES must not be negative, got %d", ErrInvalid, c.Verify.MaxFailures)
	}
	switch c.Verify.Format {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("%w: VERIFY_FORMAT %q is not one of json, yaml, toml", ErrInvalid, c.Verify.Format)
	}
	return nil
}

func (v *VerifyConfig) normalize() {
	v.Format = strings.ToLower(strings.TrimSpace(v.Format))
	fns := v.Functions[:0]
	for _, fn := range v.Functions {
		if fn = strings.ToLower(strings.TrimSpace(fn)); fn != "" {
			fns = append(fns, fn)
		}
	}
	v.Functions = fns
}
