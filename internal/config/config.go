// Package config loads Strive settings from an optional strive.yaml,
// environment variables, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"strive/internal/storage"
)

// Focus holds the pomodoro timer settings.
type Focus struct {
	WorkMinutes            int
	ShortBreakMinutes      int
	LongBreakMinutes       int
	SessionsUntilLongBreak int
}

// Config is the resolved application configuration.
type Config struct {
	DBPath string
	Focus  Focus
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() (*Config, error) {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return &Config{
		DBPath: dbPath,
		Focus: Focus{
			WorkMinutes:            25,
			ShortBreakMinutes:      5,
			LongBreakMinutes:       15,
			SessionsUntilLongBreak: 4,
		},
	}, nil
}

// Load reads strive.yaml from baseDir, or from the user config dir and
// the working directory when baseDir is empty. A missing file is not an
// error; defaults fill every absent key. Environment variables with the
// STRIVE_ prefix override both (STRIVE_FOCUS_WORK_MINUTES and friends).
func Load(baseDir string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("strive")
	v.SetConfigType("yaml")
	if baseDir != "" {
		v.AddConfigPath(baseDir)
	} else {
		if userDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(userDir, "strive"))
		}
		v.AddConfigPath(".")
	}

	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("focus.work_minutes", cfg.Focus.WorkMinutes)
	v.SetDefault("focus.short_break_minutes", cfg.Focus.ShortBreakMinutes)
	v.SetDefault("focus.long_break_minutes", cfg.Focus.LongBreakMinutes)
	v.SetDefault("focus.sessions_until_long_break", cfg.Focus.SessionsUntilLongBreak)

	v.SetEnvPrefix("STRIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read strive.yaml: %w", err)
		}
	}

	cfg.DBPath = v.GetString("db_path")
	cfg.Focus.WorkMinutes = v.GetInt("focus.work_minutes")
	cfg.Focus.ShortBreakMinutes = v.GetInt("focus.short_break_minutes")
	cfg.Focus.LongBreakMinutes = v.GetInt("focus.long_break_minutes")
	cfg.Focus.SessionsUntilLongBreak = v.GetInt("focus.sessions_until_long_break")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []string
	if c.DBPath == "" {
		errs = append(errs, "db_path must not be empty")
	}
	if c.Focus.WorkMinutes <= 0 {
		errs = append(errs, fmt.Sprintf("focus.work_minutes must be positive, got %d", c.Focus.WorkMinutes))
	}
	if c.Focus.ShortBreakMinutes <= 0 {
		errs = append(errs, fmt.Sprintf("focus.short_break_minutes must be positive, got %d", c.Focus.ShortBreakMinutes))
	}
	if c.Focus.LongBreakMinutes <= 0 {
		errs = append(errs, fmt.Sprintf("focus.long_break_minutes must be positive, got %d", c.Focus.LongBreakMinutes))
	}
	if c.Focus.SessionsUntilLongBreak <= 0 {
		errs = append(errs, fmt.Sprintf("focus.sessions_until_long_break must be positive, got %d", c.Focus.SessionsUntilLongBreak))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
