package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr              = ":8080"
	DefaultRateLimitCapacity = 5
	DefaultRateLimitInterval = time.Minute
)

// Config holds the service configuration. Zero values fall back to defaults;
// an empty Redis address selects the in-process cache.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	RateLimit struct {
		Capacity        int `yaml:"capacity"`
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"rate_limit"`
}

// Load reads the YAML config file at path. A missing file is not an error:
// defaults apply. Environment variables AMORTIZER_ADDR and
// AMORTIZER_REDIS_ADDR override the file.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if addr := os.Getenv("AMORTIZER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if addr := os.Getenv("AMORTIZER_REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.RateLimit.Capacity <= 0 {
		cfg.RateLimit.Capacity = DefaultRateLimitCapacity
	}

	return cfg, nil
}

// RateLimitInterval returns the configured refill interval.
func (c Config) RateLimitInterval() time.Duration {
	if c.RateLimit.IntervalSeconds <= 0 {
		return DefaultRateLimitInterval
	}
	return time.Duration(c.RateLimit.IntervalSeconds) * time.Second
}
