package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/e11jah/anagram/internal/render"
)

const (
	EnvLogLevel = "ANAGRAM_LOG_LEVEL"
	EnvFormat   = "ANAGRAM_FORMAT"
	EnvMinGroup = "ANAGRAM_MIN_GROUP"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`

	// MinGroup hides groups with fewer words when listing.
	MinGroup int `yaml:"min_group"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   render.FormatText,
		MinGroup: 1,
	}
}

// Load starts from the defaults, applies the YAML file at path when path is
// not empty, then the environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvMinGroup); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvMinGroup, v, err)
		}
		c.MinGroup = n
	}
	return nil
}

func (c *Config) Validate() error {
	if !render.IsKnown(c.Format) {
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if c.MinGroup < 0 {
		return fmt.Errorf("%w: min_group %d", ErrInvalidConfig, c.MinGroup)
	}
	return nil
}
