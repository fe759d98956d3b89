package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		ProfileFile string `yaml:"profile_file"`
		SQLitePath  string `yaml:"sqlite_path"`
	} `yaml:"data"`
	Coach struct {
		// Pointers so an explicit 0 (no delay) is distinct from unset.
		TypingDelayMs  *int   `yaml:"typing_delay_ms"`
		TypingJitterMs *int   `yaml:"typing_jitter_ms"`
		DefaultCountry string `yaml:"default_country"`
	} `yaml:"coach"`
	Streak struct {
		RolloverCron string `yaml:"rollover_cron"`
	} `yaml:"streak"`
	Log struct {
		Development bool   `yaml:"development"`
		Level       string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; every field has a
// usable default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PROFILE_FILE"); v != "" {
		cfg.Data.ProfileFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Data.SQLitePath = v
	}
	if v := os.Getenv("TYPING_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Coach.TypingDelayMs = &ms
		}
	}
	if v := os.Getenv("TYPING_JITTER_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Coach.TypingJitterMs = &ms
		}
	}
	if v := os.Getenv("DEFAULT_COUNTRY"); v != "" {
		cfg.Coach.DefaultCountry = v
	}
	if v := os.Getenv("STREAK_ROLLOVER_CRON"); v != "" {
		cfg.Streak.RolloverCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		cfg.Log.Development = v == "true"
	}

	// Defaults
	if cfg.Data.ProfileFile == "" {
		cfg.Data.ProfileFile = "data/profile.json"
	}
	if cfg.Data.SQLitePath == "" {
		cfg.Data.SQLitePath = "data/coach_history.db"
	}
	if cfg.Coach.TypingDelayMs == nil {
		def := 1000
		cfg.Coach.TypingDelayMs = &def
	}
	if cfg.Coach.TypingJitterMs == nil {
		def := 2000
		cfg.Coach.TypingJitterMs = &def
	}
	if cfg.Coach.DefaultCountry == "" {
		cfg.Coach.DefaultCountry = "us"
	}
	if cfg.Streak.RolloverCron == "" {
		cfg.Streak.RolloverCron = "0 0 0 * * *"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if *c.Coach.TypingDelayMs < 0 {
		return fmt.Errorf("coach.typing_delay_ms must not be negative")
	}
	if *c.Coach.TypingJitterMs < 0 {
		return fmt.Errorf("coach.typing_jitter_ms must not be negative")
	}
	if c.Data.ProfileFile == "" {
		return fmt.Errorf("data.profile_file is required")
	}
	return nil
}

// TypingDelay returns the configured base typing delay. Zero disables the
// delay entirely.
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(*c.Coach.TypingDelayMs) * time.Millisecond
}

// TypingJitter returns the configured maximum jitter on top of the base
// delay.
func (c *Config) TypingJitter() time.Duration {
	return time.Duration(*c.Coach.TypingJitterMs) * time.Millisecond
}
