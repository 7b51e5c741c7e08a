package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Quotes struct {
		BaseURL         string        `yaml:"base_url"`
		APIKey          string        `yaml:"api_key"`
		Timeout         time.Duration `yaml:"timeout"`
		SyntheticPrefix string        `yaml:"synthetic_prefix"`
		DefaultPeriod   int           `yaml:"default_period"`
		Workers         int           `yaml:"workers"`
	} `yaml:"quotes"`
	Optimizer struct {
		BaseURL       string        `yaml:"base_url"`
		Timeout       time.Duration `yaml:"timeout"`
		HealthTimeout time.Duration `yaml:"health_timeout"`
	} `yaml:"optimizer"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PYTHON_API_BASE_URL"); v != "" {
		c.Optimizer.BaseURL = v
	}
	if v := os.Getenv("QUOTES_BASE_URL"); v != "" {
		c.Quotes.BaseURL = v
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		c.Quotes.APIKey = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Quotes.Timeout == 0 {
		c.Quotes.Timeout = 30 * time.Second
	}
	if c.Quotes.SyntheticPrefix == "" {
		c.Quotes.SyntheticPrefix = "SIM_"
	}
	if c.Quotes.DefaultPeriod == 0 {
		c.Quotes.DefaultPeriod = 30
	}
	if c.Quotes.Workers == 0 {
		c.Quotes.Workers = 4
	}
	if c.Optimizer.Timeout == 0 {
		c.Optimizer.Timeout = 60 * time.Second
	}
	if c.Optimizer.HealthTimeout == 0 {
		c.Optimizer.HealthTimeout = 3 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Optimizer.BaseURL == "" {
		return fmt.Errorf("optimizer.base_url is required")
	}
	if c.Quotes.DefaultPeriod <= 0 {
		return fmt.Errorf("quotes.default_period must be positive")
	}
	if c.Quotes.Workers <= 0 {
		return fmt.Errorf("quotes.workers must be positive")
	}
	if c.Optimizer.HealthTimeout >= c.Optimizer.Timeout {
		return fmt.Errorf("optimizer.health_timeout must be shorter than optimizer.timeout")
	}
	return nil
}
