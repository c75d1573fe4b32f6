// Package config loads tool configuration for the rover CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Gen     GenConfig     `koanf:"gen"`
}

// LoggingConfig controls the diagnostic logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// GenConfig holds defaults for random scenario generation.
type GenConfig struct {
	Width     int   `koanf:"width"`
	Height    int   `koanf:"height"`
	Obstacles int   `koanf:"obstacles"`
	Seed      int64 `koanf:"seed"`
}

// Load reads configuration with the precedence (highest first):
//
//  1. MARSROVER_* environment variables (MARSROVER_LOGGING_LEVEL etc.)
//  2. YAML config file, when a path is given
//  3. Built-in defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	// MARSROVER_LOGGING_LEVEL -> logging.level
	if err := k.Load(env.Provider("MARSROVER_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "MARSROVER_"))
		parts := strings.SplitN(key, "_", 2)
		if len(parts) == 1 {
			return key
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Gen.Width == 0 {
		cfg.Gen.Width = 10
	}
	if cfg.Gen.Height == 0 {
		cfg.Gen.Height = 10
	}
	if cfg.Gen.Obstacles == 0 {
		cfg.Gen.Obstacles = 8
	}
	if cfg.Gen.Seed == 0 {
		cfg.Gen.Seed = 42
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown logging format %q", c.Logging.Format)
	}
	if c.Gen.Width < 1 || c.Gen.Height < 1 {
		return fmt.Errorf("config: gen dimensions must be positive, got %dx%d", c.Gen.Width, c.Gen.Height)
	}
	if c.Gen.Obstacles < 0 {
		return fmt.Errorf("config: gen obstacles must not be negative, got %d", c.Gen.Obstacles)
	}
	return nil
}
