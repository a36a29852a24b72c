package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analytics.DefaultRange != "weekly" {
		t.Errorf("DefaultRange = %q, want %q", cfg.Analytics.DefaultRange, "weekly")
	}
	if cfg.Analytics.DailyGoal != 5 {
		t.Errorf("DailyGoal = %d, want 5", cfg.Analytics.DailyGoal)
	}
	if cfg.Storage.Dir != "store" {
		t.Errorf("Storage.Dir = %q, want %q", cfg.Storage.Dir, "store")
	}
	if cfg.Mirror.Enabled {
		t.Error("mirror should be disabled by default")
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("default config should validate, got %v", errs)
	}
}

func TestLoadMissingConfigUsesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, warnings, err := Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a missing-config warning")
	}
	if cfg.Analytics.DefaultRange != "weekly" {
		t.Errorf("DefaultRange = %q, want default", cfg.Analytics.DefaultRange)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	home := t.TempDir()

	cfg := DefaultConfig()
	cfg.Analytics.DefaultRange = "monthly"
	cfg.Analytics.DailyGoal = 8
	cfg.Mirror.Enabled = true
	cfg.Mirror.Interval = 2 * time.Minute

	if err := Save(home, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, _, err := Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Analytics.DefaultRange != "monthly" {
		t.Errorf("DefaultRange = %q, want %q", loaded.Analytics.DefaultRange, "monthly")
	}
	if loaded.Analytics.DailyGoal != 8 {
		t.Errorf("DailyGoal = %d, want 8", loaded.Analytics.DailyGoal)
	}
	if !loaded.Mirror.Enabled {
		t.Error("Mirror.Enabled not persisted")
	}
	if loaded.Mirror.Interval != 2*time.Minute {
		t.Errorf("Mirror.Interval = %s, want 2m", loaded.Mirror.Interval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"bad range", func(c *Config) { c.Analytics.DefaultRange = "quarterly" }, true},
		{"negative goal", func(c *Config) { c.Analytics.DailyGoal = -1 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"mirror without interval", func(c *Config) { c.Mirror.Enabled = true; c.Mirror.Interval = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			errs := Validate(cfg)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate errs = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if got := StoreDir("/home/u/.daykeep", cfg); got != filepath.Join("/home/u/.daykeep", "store") {
		t.Errorf("StoreDir = %q", got)
	}
	if got := MirrorPath("/home/u/.daykeep", cfg); got != filepath.Join("/home/u/.daykeep", "mirror.json") {
		t.Errorf("MirrorPath = %q", got)
	}

	cfg.Storage.Dir = "/var/lib/daykeep"
	if got := StoreDir("/home/u/.daykeep", cfg); got != "/var/lib/daykeep" {
		t.Errorf("absolute StoreDir = %q, want passthrough", got)
	}
}
