// Package config loads notify's settings from defaults, config files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/notify/internal/sound"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "NOTIFY_"

// Configuration represents the notify CLI configuration
type Configuration struct {
	Shell        string `koanf:"shell" validate:"required"`
	NotifierCmd  string `koanf:"notifier_cmd" validate:"required"`
	DefaultSound string `koanf:"default_sound" validate:"required,soundname"`
	LogLevel     string `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// Sound returns DefaultSound as a sound.Sound. Load has already validated it.
func (c *Configuration) Sound() sound.Sound {
	s, err := sound.Parse(c.DefaultSound)
	if err != nil {
		return sound.Default
	}
	return s
}

// Load loads configuration from the user config file, an optional explicit
// config file, and environment variables.
// Priority: Environment variables > explicit config > user config > defaults
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	// Load user config if it exists
	if userPath, err := UserConfigPath(); err == nil {
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	// An explicitly requested file must exist
	if configPath != "" {
		configPath = expandHomePath(configPath)
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	}

	// Override with environment variables (highest priority). Empty values
	// are treated as unset so NOTIFY_SHELL= does not clobber the default.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Shell = expandHomePath(cfg.Shell)
	cfg.NotifierCmd = expandHomePath(cfg.NotifierCmd)

	return &cfg, nil
}

// UserConfigPath returns $XDG_CONFIG_HOME/notify/config.json, falling back to
// ~/.config/notify/config.json.
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notify", "config.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "notify", "config.json"), nil
}

// newValidator returns a validator that also understands the soundname tag.
func newValidator() *validator.Validate {
	validate := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("soundname", func(fl validator.FieldLevel) bool {
		_, err := sound.Parse(fl.Field().String())
		return err == nil
	})
	return validate
}

// envValue maps a variable to its config key, dropping empty values.
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envTransform(key), value
}

// envTransform converts environment variable names to config keys
// Example: NOTIFY_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
