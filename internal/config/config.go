// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultPort           = 8080
	DefaultCacheTTL       = 10 * time.Minute
	DefaultRefreshCron    = "@every 10m"
	DefaultRequestTimeout = 30 * time.Second
)

// Config is the runtime configuration, loadable from a JSON file with
// environment overrides. All fields are optional; missing values use
// defaults. The classification thresholds are deliberately NOT here — they
// are constants of the status package, not tunables.
type Config struct {
	FeedURLs              []string `json:"feed_urls,omitempty"`               // Admin feed endpoints; empty means bundled dataset only
	Port                  int      `json:"port,omitempty"`                    // HTTP listen port
	CacheTTLMinutes       int      `json:"cache_ttl_minutes,omitempty"`       // Contest cache freshness window
	RefreshCron           string   `json:"refresh_cron,omitempty"`            // Cron spec for background cache refresh
	RequestTimeoutSeconds int      `json:"request_timeout_seconds,omitempty"` // Per-feed HTTP timeout
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Recognized
// variables: CONTEST_FEED_URLS (comma separated), PORT,
// CONTEST_CACHE_TTL_MINUTES, CONTEST_REFRESH_CRON,
// CONTEST_REQUEST_TIMEOUT_SECONDS.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CONTEST_FEED_URLS"); v != "" {
		var urls []string
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		c.FeedURLs = urls
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CONTEST_CACHE_TTL_MINUTES"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			c.CacheTTLMinutes = ttl
		}
	}
	if v := os.Getenv("CONTEST_REFRESH_CRON"); v != "" {
		c.RefreshCron = v
	}
	if v := os.Getenv("CONTEST_REQUEST_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.RequestTimeoutSeconds = secs
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 0..65535")
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'request_timeout_seconds' must be non-negative")
	}
	for _, u := range c.FeedURLs {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("config error: feed URL %q must be http(s)", u)
		}
	}
	return nil
}

// EffectivePort returns the configured port or the default.
func (c *Config) EffectivePort() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

// EffectiveCacheTTL returns the configured cache TTL or the default.
func (c *Config) EffectiveCacheTTL() time.Duration {
	if c.CacheTTLMinutes == 0 {
		return DefaultCacheTTL
	}
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// EffectiveRefreshCron returns the configured refresh schedule or the
// default.
func (c *Config) EffectiveRefreshCron() string {
	if c.RefreshCron == "" {
		return DefaultRefreshCron
	}
	return c.RefreshCron
}

// EffectiveRequestTimeout returns the configured feed timeout or the
// default.
func (c *Config) EffectiveRequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds == 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
