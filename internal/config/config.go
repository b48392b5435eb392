// Package config provides configuration management for ubb.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/google/renameio"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

// Config holds the ubb configuration. Unset fields fall back to
// ubb.DefaultSettings.
type Config struct {
	DefaultColor   string `yaml:"default_color,omitempty"`
	LinkColor      string `yaml:"link_color,omitempty"`
	KeepWhiteSpace *bool  `yaml:"keep_whitespace,omitempty"`
	KeepNewLine    *bool  `yaml:"keep_newline,omitempty"`
	FlashImage     string `yaml:"flash_image,omitempty"`
	OutputFormat   string `yaml:"output_format,omitempty"`
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that all set fields hold usable values.
func (c *Config) Validate() error {
	if c.DefaultColor != "" && !hexColor.MatchString(c.DefaultColor) {
		return errors.New("default_color must be #rgb or #rrggbb")
	}
	if c.LinkColor != "" && !hexColor.MatchString(c.LinkColor) {
		return errors.New("link_color must be #rgb or #rrggbb")
	}
	switch c.OutputFormat {
	case "", "plain", "table", "json":
	default:
		return errors.New("output_format must be plain, table or json")
	}
	return nil
}

// Settings returns the conversion settings described by the configuration.
func (c *Config) Settings() ubb.Settings {
	s := ubb.DefaultSettings()
	if c.DefaultColor != "" {
		s.DefaultColor = ubb.NormalizeColor(c.DefaultColor)
	}
	if c.LinkColor != "" {
		s.LinkDefaultColor = ubb.NormalizeColor(c.LinkColor)
	}
	if c.KeepWhiteSpace != nil {
		s.KeepWhiteSpace = *c.KeepWhiteSpace
	}
	if c.KeepNewLine != nil {
		s.KeepNewLine = *c.KeepNewLine
	}
	if c.FlashImage != "" {
		s.FlashImage = c.FlashImage
	}
	return s
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("UBB_DEFAULT_COLOR"); v != "" {
		c.DefaultColor = v
	}
	if v := os.Getenv("UBB_LINK_COLOR"); v != "" {
		c.LinkColor = v
	}
	if v := os.Getenv("UBB_FLASH_IMAGE"); v != "" {
		c.FlashImage = v
	}
	if err := envBool("UBB_KEEP_WHITESPACE", &c.KeepWhiteSpace); err != nil {
		return err
	}
	return envBool("UBB_KEEP_NEWLINE", &c.KeepNewLine)
}

func envBool(name string, dst **bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = &b
	return nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ubb", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ubb", "config.yml")
	}

	return filepath.Join(home, ".config", "ubb", "config.yml")
}

// Save atomically writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file yields an empty configuration; a file that exists
// but cannot be parsed is an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bool returns a pointer to b, for filling optional fields.
func Bool(b bool) *bool {
	return &b
}
