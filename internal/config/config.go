package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/timezone"
	log "github.com/sirupsen/logrus"
)

const defaultPort = "3000"

type Config struct {
	Port                 string
	DefaultTimezone      string
	DatabasePath         string
	HistoryRetention     time.Duration
	HistoryPruneSchedule string
	LogLevel             string
	LogFormat            string
	SlackSigningSecret   string
}

// HistoryEnabled reports whether lookups should be persisted.
func (c *Config) HistoryEnabled() bool {
	return c.DatabasePath != ""
}

// fileConfig mirrors the optional TOML file. Pointers separate "absent" from
// "set to the empty string".
type fileConfig struct {
	Port                 string   `toml:"port"`
	DefaultTimezone      string   `toml:"default_timezone"`
	DatabasePath         *string  `toml:"database_path"`
	HistoryRetention     Duration `toml:"history_retention"`
	HistoryPruneSchedule string   `toml:"history_prune_schedule"`
	LogLevel             string   `toml:"log_level"`
	LogFormat            string   `toml:"log_format"`
	SlackSigningSecret   string   `toml:"slack_signing_secret"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Load builds the configuration from defaults, then the TOML file named by
// CONFIG_FILE (if any), then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 defaultPort,
		DefaultTimezone:      domain.DefaultTimezone,
		DatabasePath:         "./weekday.db",
		HistoryRetention:     domain.DefaultHistoryRetention,
		HistoryPruneSchedule: domain.DefaultHistoryPruneSchedule,
		LogLevel:             "info",
		LogFormat:            "text",
	}

	portSet := false
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := cfg.loadFile(path)
		if err != nil {
			return nil, err
		}
		portSet = fc.Port != ""
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	} else if !portSet {
		log.Warnf("PORT not set, using default port %s", defaultPort)
	}
	cfg.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", cfg.DefaultTimezone)
	if path, ok := os.LookupEnv("DATABASE_PATH"); ok {
		cfg.DatabasePath = strings.TrimSpace(path)
	}
	cfg.HistoryPruneSchedule = getEnv("HISTORY_PRUNE_SCHEDULE", cfg.HistoryPruneSchedule)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.SlackSigningSecret = getEnv("SLACK_SIGNING_SECRET", cfg.SlackSigningSecret)

	if raw := os.Getenv("HISTORY_RETENTION"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_RETENTION %q: %w", raw, err)
		}
		cfg.HistoryRetention = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) (*fileConfig, error) {
	path = os.ExpandEnv(path)

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.DefaultTimezone != "" {
		c.DefaultTimezone = fc.DefaultTimezone
	}
	if fc.DatabasePath != nil {
		c.DatabasePath = strings.TrimSpace(*fc.DatabasePath)
	}
	if fc.HistoryRetention.Duration != 0 {
		c.HistoryRetention = fc.HistoryRetention.Duration
	}
	if fc.HistoryPruneSchedule != "" {
		c.HistoryPruneSchedule = fc.HistoryPruneSchedule
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.SlackSigningSecret != "" {
		c.SlackSigningSecret = fc.SlackSigningSecret
	}
	return &fc, nil
}

func (c *Config) validate() error {
	// canonical spelling, e.g. canada/mountain -> Canada/Mountain
	loc, err := timezone.Load(c.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", c.DefaultTimezone, err)
	}
	c.DefaultTimezone = loc.String()

	if c.HistoryRetention <= 0 {
		return fmt.Errorf("HISTORY_RETENTION must be positive, got %s", c.HistoryRetention)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
