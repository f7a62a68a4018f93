// Package config provides YAML configuration for the ingestion pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scholarseek/internal/schedule"
)

// Configuration validation errors.
var (
	ErrNoKeywords      = errors.New("keywords is required")
	ErrInvalidMaxPages = errors.New("max_pages must be between 1 and 5")
	ErrNoDatabase      = errors.New("database path is required")
	ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")
)

// Config holds the persisted settings shared by the scheduled and manual
// triggers.
type Config struct {
	Keywords string `yaml:"keywords"`
	MaxPages int    `yaml:"max_pages"`
	Database string `yaml:"database"`
	Cache    string `yaml:"cache"`
	Interval string `yaml:"interval"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Keywords: "PhD scholarship",
		MaxPages: 1,
		Database: "scholarseek.db",
		Cache:    "scholarseek-cache.json",
		Interval: string(schedule.Daily),
		LogLevel: "info",
	}
}

// Load reads and validates a YAML configuration file. Omitted fields fall
// back to defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values against their allowed ranges.
func (c *Config) Validate() error {
	if c.Keywords == "" {
		return ErrNoKeywords
	}
	if c.MaxPages < 1 || c.MaxPages > 5 {
		return ErrInvalidMaxPages
	}
	if c.Database == "" {
		return ErrNoDatabase
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	if _, err := schedule.ParseInterval(c.Interval); err != nil {
		return err
	}
	return nil
}
