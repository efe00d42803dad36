package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"taskmanager/internal/store"
)

// Config holds application settings.
type Config struct {
	Port     string        `mapstructure:"port"`
	DemoData bool          `mapstructure:"demo_data"`
	Storage  StorageConfig `mapstructure:"storage"`
	Log      LogConfig     `mapstructure:"log"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // sqlite, file or memory
	Path   string `mapstructure:"path"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn or error
	Format string `mapstructure:"format"` // text or json
}

// Load reads configuration from defaults, an optional YAML file and
// TASKMANAGER_-prefixed environment variables, in increasing precedence.
// The result is not validated; callers apply their own overrides first and
// then call Validate.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("demo_data", true)
	v.SetDefault("storage.driver", store.DriverSQLite)
	v.SetDefault("storage.path", "./data/tasks.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("TASKMANAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration has valid field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is required")
	}

	switch c.Storage.Driver {
	case store.DriverSQLite, store.DriverFile:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("storage.path is required for the %s driver", c.Storage.Driver)
		}
	case store.DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be 'sqlite', 'file', or 'memory', got %q", c.Storage.Driver)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", c.Log.Format)
	}

	return nil
}
