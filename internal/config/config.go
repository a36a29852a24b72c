// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete configuration.
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage" yaml:"storage"`
	Analytics AnalyticsConfig `mapstructure:"analytics" yaml:"analytics"`
	Mirror    MirrorConfig    `mapstructure:"mirror" yaml:"mirror"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// StorageConfig contains task store configuration.
type StorageConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // database directory, relative to the daykeep home
}

// AnalyticsConfig contains analytics defaults.
type AnalyticsConfig struct {
	DefaultRange string `mapstructure:"default_range" yaml:"default_range"` // weekly, monthly, ytd, yearly, all-time
	DailyGoal    int    `mapstructure:"daily_goal" yaml:"daily_goal"`       // tasks/day used for the goal bar
}

// MirrorConfig contains autosave mirror configuration.
type MirrorConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Path     string        `mapstructure:"path" yaml:"path"`         // snapshot file, relative to the daykeep home
	Interval time.Duration `mapstructure:"interval" yaml:"interval"` // autosave interval
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: "store",
		},
		Analytics: AnalyticsConfig{
			DefaultRange: "weekly",
			DailyGoal:    5,
		},
		Mirror: MirrorConfig{
			Enabled:  false,
			Path:     "mirror.json",
			Interval: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultHome returns the default daykeep home directory (~/.daykeep).
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daykeep"
	}
	return filepath.Join(home, ".daykeep")
}

// ConfigPath returns the path to config.yaml under the daykeep home.
func ConfigPath(homeDir string) string {
	return filepath.Join(homeDir, "config.yaml")
}

// StoreDir returns the absolute task store directory.
func StoreDir(homeDir string, cfg *Config) string {
	if filepath.IsAbs(cfg.Storage.Dir) {
		return cfg.Storage.Dir
	}
	return filepath.Join(homeDir, cfg.Storage.Dir)
}

// MirrorPath returns the absolute autosave mirror path.
func MirrorPath(homeDir string, cfg *Config) string {
	if filepath.IsAbs(cfg.Mirror.Path) {
		return cfg.Mirror.Path
	}
	return filepath.Join(homeDir, cfg.Mirror.Path)
}

// Load loads configuration from the daykeep home, falling back to defaults.
func Load(homeDir string) (*Config, []string, error) {
	cfg := DefaultConfig()
	warnings := []string{}

	configPath := ConfigPath(homeDir)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		warnings = append(warnings, "No config file found, using defaults")
		return cfg, warnings, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for missing values
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "store"
	}
	if cfg.Analytics.DefaultRange == "" {
		cfg.Analytics.DefaultRange = "weekly"
	}
	if cfg.Analytics.DailyGoal == 0 {
		cfg.Analytics.DailyGoal = 5
	}
	if cfg.Mirror.Path == "" {
		cfg.Mirror.Path = "mirror.json"
	}
	if cfg.Mirror.Interval == 0 {
		cfg.Mirror.Interval = 5 * time.Minute
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return cfg, warnings, nil
}

// Save saves configuration to the daykeep home.
func Save(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(ConfigPath(homeDir))
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("analytics", cfg.Analytics)
	v.Set("mirror", cfg.Mirror)
	v.Set("logging", cfg.Logging)

	return v.WriteConfig()
}

// Validate validates the configuration.
func Validate(cfg *Config) []error {
	var errs []error

	validRanges := map[string]bool{
		"weekly": true, "monthly": true, "ytd": true, "yearly": true, "all-time": true,
	}
	if !validRanges[cfg.Analytics.DefaultRange] {
		errs = append(errs, fmt.Errorf("invalid default range: %s", cfg.Analytics.DefaultRange))
	}

	if cfg.Analytics.DailyGoal < 0 {
		errs = append(errs, fmt.Errorf("daily goal must not be negative: %d", cfg.Analytics.DailyGoal))
	}

	if cfg.Mirror.Enabled && cfg.Mirror.Interval <= 0 {
		errs = append(errs, fmt.Errorf("mirror interval must be positive: %s", cfg.Mirror.Interval))
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "": true,
	}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Errorf("invalid log level: %s", cfg.Logging.Level))
	}

	validFormats := map[string]bool{
		"text": true, "json": true, "": true,
	}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Errorf("invalid log format: %s", cfg.Logging.Format))
	}

	return errs
}
