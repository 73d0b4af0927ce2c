package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel            string `envconfig:"GDM_LOG_LEVEL" default:"info"`
	Timezone            string `envconfig:"GDM_TIMEZONE" default:"UTC"`
	AnalyticsConfigPath string `envconfig:"GDM_ANALYTICS_CONFIG"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// NewFromEnv is the constructor used by the dependency graph.
func NewFromEnv() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("could not load service configuration: %w", err)
	}
	return cfg, nil
}

// Location is the timezone used to decide which calendar day "today" is.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Clock returns the current time in the configured timezone.
type Clock func() time.Time

func NewClock(c *Config) (Clock, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return func() time.Time {
		return time.Now().In(loc)
	}, nil
}
