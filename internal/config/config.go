package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// DayStart and DayEnd bound the searchable day window (HH:MM).
	DayStart string `yaml:"day_start"`
	DayEnd   string `yaml:"day_end"`

	// DefaultDurationMin is the assumed event length when none is given.
	DefaultDurationMin int `yaml:"default_duration_min"`

	// Timezone is an IANA display label; schedule arithmetic itself is
	// zone-free (dates and HH:MM strings).
	Timezone string `yaml:"timezone"`

	// StorePath is the sqlite calendar store location. Empty means
	// local-only mode.
	StorePath string `yaml:"store_path"`
}

func DefaultConfig() *Config {
	return &Config{
		DayStart:           "08:00",
		DayEnd:             "20:00",
		DefaultDurationMin: 60,
		Timezone:           "Local",
	}
}

// Normalize fills missing or zero values so configs written by older
// versions keep working.
func (c *Config) Normalize() {
	if c.DayStart == "" {
		c.DayStart = "08:00"
	}
	if c.DayEnd == "" {
		c.DayEnd = "20:00"
	}
	if c.DefaultDurationMin <= 0 {
		c.DefaultDurationMin = 60
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
}

// DefaultPath returns the standard config location under the user config
// directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "daybook", "daybook.yaml"), nil
}

// Load reads the config at path, creating it with defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the config atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".daybook-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
