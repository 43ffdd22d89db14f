// Package config loads nhl-mcp settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	configDirName  = "nhl-mcp"
)

// duration wraps time.Duration for YAML unmarshaling.
type duration struct {
	d time.Duration
}

func (d *duration) unmarshalText(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.d = parsed
	return nil
}

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	return d.unmarshalText(value.Value)
}

func (d *duration) Duration() time.Duration {
	return d.d
}

// Config for nhl-mcp. Pointer fields; nil = unset.
type Config struct {
	APIBaseURL      *string   `yaml:"api_base_url"`
	StatsAPIBaseURL *string   `yaml:"stats_api_base_url"`
	Timeout         *duration `yaml:"timeout"`
	UserAgent       *string   `yaml:"user_agent"`
}

// LoadFrom loads config from path. Missing files return zero Config, nil.
func LoadFrom(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Load() (Config, error) {
	return LoadFrom(defaultConfigPath())
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv("NHL_MCP_API_BASE_URL"); ok {
		c.APIBaseURL = &v
	}
	if v, ok := os.LookupEnv("NHL_MCP_STATS_API_BASE_URL"); ok {
		c.StatsAPIBaseURL = &v
	}
	if v, ok := os.LookupEnv("NHL_MCP_TIMEOUT"); ok {
		d := &duration{}
		if err := d.unmarshalText(v); err != nil {
			return fmt.Errorf("parse NHL_MCP_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v, ok := os.LookupEnv("NHL_MCP_USER_AGENT"); ok {
		c.UserAgent = &v
	}
	return nil
}

func (c *Config) validate() error {
	if c.APIBaseURL != nil {
		if err := validateBaseURL(*c.APIBaseURL); err != nil {
			return fmt.Errorf("api_base_url: %w", err)
		}
	}
	if c.StatsAPIBaseURL != nil {
		if err := validateBaseURL(*c.StatsAPIBaseURL); err != nil {
			return fmt.Errorf("stats_api_base_url: %w", err)
		}
	}
	if c.Timeout != nil && c.Timeout.Duration() <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout.Duration())
	}
	if c.Timeout != nil && c.Timeout.Duration() > time.Hour {
		return fmt.Errorf("timeout must not exceed 1h, got %v", c.Timeout.Duration())
	}
	return nil
}

func validateBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName, configFileName)
}
