package state

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the user configuration for mclookup.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Downloads DownloadsConfig `yaml:"downloads"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// APIConfig holds the remote service endpoints.
type APIConfig struct {
	PlayerDBURL     string        `yaml:"playerdb_url"`
	AshconURL       string        `yaml:"ashcon_url"`
	SkinFallbackURL string        `yaml:"skin_fallback_url"`
	Timeout         time.Duration `yaml:"timeout"`
	UserAgent       string        `yaml:"user_agent"`
}

// DownloadsConfig holds skin download configuration.
type DownloadsConfig struct {
	Directory string `yaml:"directory"`
}

// UIConfig holds presentation configuration.
type UIConfig struct {
	// Locale overrides the environment locale for dates and numbers, e.g. "en-GB".
	Locale string `yaml:"locale"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			PlayerDBURL:     "https://playerdb.co",
			AshconURL:       "https://api.ashcon.app",
			SkinFallbackURL: "https://crafatar.com/skins/%s",
			Timeout:         10 * time.Second,
			UserAgent:       "",
		},
		Downloads: DownloadsConfig{
			Directory: "~/Downloads",
		},
		UI: UIConfig{
			Locale: "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from the config file.
// If the file doesn't exist, it creates a new one with defaults.
// If the file is corrupted, it backs up the corrupted file and creates a fresh one.
func LoadConfig(ctx context.Context) (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep their default value
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		backupPath := configPath + ".corrupted"
		if backupErr := os.Rename(configPath, backupPath); backupErr != nil {
			return nil, fmt.Errorf("config file is corrupted and failed to create backup: %w (original error: %v)", backupErr, err)
		}

		slog.Warn("config file corrupted, replaced with defaults", "backup", backupPath, "error", err)

		fresh := DefaultConfig()
		if saveErr := SaveConfig(ctx, fresh); saveErr != nil {
			return nil, fmt.Errorf("config file was corrupted (backed up to %s), failed to save fresh config: %w (original error: %v)", backupPath, saveErr, err)
		}

		return fresh, nil
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the config file using atomic writes.
func SaveConfig(ctx context.Context, cfg *Config) error {
	return saveConfig(cfg, AtomicWrite)
}

// UpdateConfig saves cfg and keeps the previous file as config.yaml.bak.
func UpdateConfig(ctx context.Context, cfg *Config) error {
	return saveConfig(cfg, AtomicWriteWithBackup)
}

func saveConfig(cfg *Config, write func(string, []byte, os.FileMode) error) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := write(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateURL(cfg.API.PlayerDBURL); err != nil {
		return fmt.Errorf("invalid playerdb url: %w", err)
	}

	if err := ValidateURL(cfg.API.AshconURL); err != nil {
		return fmt.Errorf("invalid ashcon url: %w", err)
	}

	if err := ValidateFallbackTemplate(cfg.API.SkinFallbackURL); err != nil {
		return fmt.Errorf("invalid skin fallback url: %w", err)
	}

	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api timeout must be >= 0, got %v", cfg.API.Timeout)
	}

	if err := ValidatePath(cfg.Downloads.Directory); err != nil {
		return fmt.Errorf("invalid downloads directory: %w", err)
	}

	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	return nil
}

// configKeys maps dotted keys to accessors on Config.
var configKeys = map[string]struct {
	get func(*Config) string
	set func(*Config, string) error
}{
	"api.playerdb_url": {
		get: func(c *Config) string { return c.API.PlayerDBURL },
		set: func(c *Config, v string) error { c.API.PlayerDBURL = v; return nil },
	},
	"api.ashcon_url": {
		get: func(c *Config) string { return c.API.AshconURL },
		set: func(c *Config, v string) error { c.API.AshconURL = v; return nil },
	},
	"api.skin_fallback_url": {
		get: func(c *Config) string { return c.API.SkinFallbackURL },
		set: func(c *Config, v string) error { c.API.SkinFallbackURL = v; return nil },
	},
	"api.timeout": {
		get: func(c *Config) string { return c.API.Timeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", v, err)
			}
			c.API.Timeout = d
			return nil
		},
	},
	"api.user_agent": {
		get: func(c *Config) string { return c.API.UserAgent },
		set: func(c *Config, v string) error { c.API.UserAgent = v; return nil },
	},
	"downloads.directory": {
		get: func(c *Config) string { return c.Downloads.Directory },
		set: func(c *Config, v string) error { c.Downloads.Directory = v; return nil },
	},
	"ui.locale": {
		get: func(c *Config) string { return c.UI.Locale },
		set: func(c *Config, v string) error { c.UI.Locale = v; return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = strings.ToLower(v); return nil },
	},
}

// ConfigKeys returns the settable configuration keys in sorted order.
func ConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value for a dotted config key.
func (c *Config) Get(key string) (string, error) {
	accessor, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}
	return accessor.get(c), nil
}

// Set assigns a value to a dotted config key and validates the result.
// The config is left unchanged if the new value is invalid.
func (c *Config) Set(key, value string) error {
	accessor, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}

	candidate := *c
	if err := accessor.set(&candidate, value); err != nil {
		return err
	}

	if err := ValidateConfig(&candidate); err != nil {
		return err
	}

	*c = candidate
	return nil
}
