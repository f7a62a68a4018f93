package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
keywords: "machine learning PhD"
max_pages: 3
database: /var/lib/scholarseek/listings.db
interval: weekly
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Keywords != "machine learning PhD" {
		t.Errorf("keywords = %q", cfg.Keywords)
	}
	if cfg.MaxPages != 3 {
		t.Errorf("max_pages = %d", cfg.MaxPages)
	}
	if cfg.Interval != "weekly" {
		t.Errorf("interval = %q", cfg.Interval)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `keywords: "fellowships"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.MaxPages != def.MaxPages {
		t.Errorf("max_pages = %d, want default %d", cfg.MaxPages, def.MaxPages)
	}
	if cfg.Database != def.Database {
		t.Errorf("database = %q, want default %q", cfg.Database, def.Database)
	}
	if cfg.LogLevel != def.LogLevel {
		t.Errorf("log_level = %q, want default %q", cfg.LogLevel, def.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"empty keywords", func(c *Config) { c.Keywords = "" }, ErrNoKeywords},
		{"pages too low", func(c *Config) { c.MaxPages = 0 }, ErrInvalidMaxPages},
		{"pages too high", func(c *Config) { c.MaxPages = 6 }, ErrInvalidMaxPages},
		{"empty database", func(c *Config) { c.Database = "" }, ErrNoDatabase},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("bad interval", func(t *testing.T) {
		cfg := Default()
		cfg.Interval = "fortnightly"
		if err := cfg.Validate(); err == nil {
			t.Error("expected an error for an unknown interval")
		}
	})

	t.Run("default is valid", func(t *testing.T) {
		if err := Default().Validate(); err != nil {
			t.Errorf("default config invalid: %v", err)
		}
	})
}
