// Package config loads calculator settings from YAML, applies GEOCALC_*
// environment overrides and resolves the geocalc dot-directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"geocalc/internal/journal"
)

// Config holds all geocalc configuration.
type Config struct {
	Theme     string        `yaml:"theme"`     // light, dark or auto
	Precision int           `yaml:"precision"` // decimals shown for metric values
	Journal   JournalConfig `yaml:"journal"`
	Logging   LoggingConfig `yaml:"logging"`
}

// JournalConfig configures the append-only result log.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures logging for the non-interactive commands.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Theme:     "auto",
		Precision: 2,
		Journal: JournalConfig{
			Enabled: true,
			Path:    journal.DefaultFilename,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the directory where config is stored. A project-local
// .geocalc directory wins over the home-level one.
func Dir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".geocalc")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".geocalc"), nil
}

// DefaultPath returns the full path to the config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from path, resolving the default location when
// path is empty. A missing file yields defaults. Environment overrides
// apply on top of whatever was read.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			cfg.sanitize()
			return cfg, nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.sanitize()
	return cfg, nil
}

// Save writes configuration to path, resolving the default location when
// path is empty and creating parent directories as needed.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// JournalPath returns the effective journal destination, empty when
// journaling is disabled.
func (c Config) JournalPath() string {
	if !c.Journal.Enabled {
		return ""
	}
	if c.Journal.Path == "" {
		return journal.DefaultFilename
	}
	return c.Journal.Path
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GEOCALC_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("GEOCALC_PRECISION"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Precision = p
		}
	}
	if v := os.Getenv("GEOCALC_JOURNAL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Journal.Enabled = b
		}
	}
	if v := os.Getenv("GEOCALC_JOURNAL_PATH"); v != "" {
		c.Journal.Path = v
	}
	if v := os.Getenv("GEOCALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// sanitize clamps values that would break display formatting.
func (c *Config) sanitize() {
	if c.Precision < 0 || c.Precision > 12 {
		c.Precision = DefaultConfig().Precision
	}
	switch strings.ToLower(c.Theme) {
	case "light", "dark", "auto":
		c.Theme = strings.ToLower(c.Theme)
	default:
		c.Theme = "auto"
	}
}
