// Package config loads wintoast settings from defaults, the user config file,
// an explicit config file and WINTOAST_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wintoast/wintoast/internal/notify"
)

const (
	// EnvPrefix is the prefix of environment variables that override config keys
	EnvPrefix = "WINTOAST_"

	// EnvConfigPath names an extra config file loaded after the user config
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// Configuration represents the wintoast CLI configuration
type Configuration struct {
	AppID         string `koanf:"app_id" validate:"required"`
	Backend       string `koanf:"backend" validate:"required,backend"`
	Silent        bool   `koanf:"silent"`
	SoundFile     string `koanf:"sound_file"`
	ExpireTimeout int    `koanf:"expire_timeout" validate:"min=-1"`
	LogLevel      string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// Load loads configuration from defaults, the user config file, the file at
// localConfigPath (if any) and the environment.
// Priority: Environment variables > Local config > User config > Defaults
// Missing files are not an error.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %q: %w", key, err)
		}
	}

	if userPath := UserConfigPath(); userPath != "" {
		if err := loadFile(k, userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", fieldError(err, localConfigPath))
	}

	cfg.SoundFile = expandHomePath(cfg.SoundFile)

	return &cfg, nil
}

// newValidator returns a validator that also knows the "backend" rule.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("backend", func(fl validator.FieldLevel) bool {
		return notify.ValidBackend(fl.Field().String())
	})
	return v
}

// loadFile merges a JSON config file into k. A missing file is skipped.
func loadFile(k *koanf.Koanf, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := ValidateJSONSyntax(data, path); err != nil {
		return err
	}
	return k.Load(file.Provider(path), json.Parser())
}

// UserConfigPath returns <user config dir>/wintoast/config.json, or "" when
// the user config dir cannot be determined.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wintoast", "config.json")
}

// LocalConfigPath returns the file named by WINTOAST_CONFIG, if set.
func LocalConfigPath() string {
	return os.Getenv(EnvConfigPath)
}

// envTransform converts environment variable names to config keys
// Example: WINTOAST_LOG_LEVEL -> log_level
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

// Notify returns the delivery settings for the notify package.
func (c *Configuration) Notify() notify.Config {
	return notify.Config{
		AppID:         c.AppID,
		Backend:       notify.Backend(c.Backend),
		Silent:        c.Silent,
		SoundFile:     c.SoundFile,
		ExpireTimeout: c.ExpireTimeout,
	}
}

// SlogLevel maps log_level onto a slog.Level.
func (c *Configuration) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
