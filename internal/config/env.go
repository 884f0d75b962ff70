package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings resolved from the environment and flags.
type Config struct {
	Source       string        `env:"TEAMS_SOURCE" envDefault:"dados.json"`
	BaseURL      string        `env:"TEAMS_BASE_URL"`
	FetchTimeout time.Duration `env:"TEAMS_FETCH_TIMEOUT" envDefault:"10s"`
	Debounce     time.Duration `env:"TEAMS_DEBOUNCE" envDefault:"500ms"`
	Theme        string        `env:"TEAMS_THEME" envDefault:"default"`
	LogFile      string        `env:"TEAMS_LOG_FILE"`
	LogLevel     string        `env:"TEAMS_LOG_LEVEL" envDefault:"info"`
	ExportDir    string        `env:"TEAMS_EXPORT_DIR" envDefault:"."`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	c.Source = strings.TrimSpace(c.Source)
	if c.Source == "" {
		c.Source = DatasetResource
	}
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = FetchTimeout
	}
	if c.Debounce <= 0 {
		c.Debounce = DebounceDelay
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	return c
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("dataset source is empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// IsRemote reports whether the dataset is fetched over HTTP.
func (c Config) IsRemote() bool {
	return IsURL(c.Source) || c.BaseURL != ""
}

// ResourceName is the name shown to the user when the dataset cannot be loaded.
func (c Config) ResourceName() string {
	if IsURL(c.Source) {
		return c.Source
	}
	return filepath.Base(c.Source)
}

// IsURL reports whether s is an absolute http(s) URL.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
