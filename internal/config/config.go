package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DefaultView is the zoom level the board opens with: YEAR, THREE or
	// MONTH.
	DefaultView string `yaml:"default_view"`
	// DatabasePath overrides the board database location.
	DatabasePath string `yaml:"database_path"`
	// Colors overrides category colors on top of what the store holds.
	Colors      map[string]string `yaml:"colors"`
	KeyMappings KeyMappings       `yaml:"key_mappings"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultView: "YEAR",
		Colors:      map[string]string{},
		KeyMappings: DefaultKeyMappings(),
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize fills back anything an edited file left blank.
func (c *Config) normalize() {
	if c.DefaultView != "YEAR" && c.DefaultView != "THREE" && c.DefaultView != "MONTH" {
		c.DefaultView = "YEAR"
	}
	if c.Colors == nil {
		c.Colors = map[string]string{}
	}
	c.KeyMappings.fillDefaults()
}

// configPath resolves the config file, honoring the VILLABOARD_CONFIG
// environment variable.
func configPath() (string, error) {
	if env := os.Getenv("VILLABOARD_CONFIG"); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "villaboard", "config.yaml"), nil
}
