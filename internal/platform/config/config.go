// Package config defines service configuration and its loading from defaults,
// an optional YAML file, and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SessionSecret signs session cookies. A random secret is used when empty,
	// which invalidates sessions on restart.
	SessionSecret string `koanf:"session_secret"`

	// SessionTTL is the lifetime of a session cookie and of its stored history.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// CookieSecure marks the session cookie as HTTPS only.
	CookieSecure bool `koanf:"cookie_secure"`

	// HistoryLimit caps how many history entries are displayed.
	HistoryLimit int `koanf:"history_limit"`

	// AnalyzeRPM limits analysis submissions per minute across the process. 0 disables it.
	AnalyzeRPM int `koanf:"analyze_rpm"`

	// UpstreamTimeout bounds one chat-completion call. 0 leaves it to the transport.
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	// CompletionCacheTTL enables caching of identical completions in Redis. 0 disables it.
	CompletionCacheTTL time.Duration `koanf:"completion_cache_ttl"`

	// RedisAddr is host:port of Redis. Empty keeps session history in memory.
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`

	// OpenRouter credentials and endpoint (OPENROUTER_* variables).
	OpenRouterAPIKey  string `koanf:"openrouter_api_key"`
	OpenRouterBaseURL string `koanf:"openrouter_base_url"`
	OpenRouterSiteURL string `koanf:"openrouter_site_url"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		SessionTTL:        24 * time.Hour,
		HistoryLimit:      10,
		OpenRouterBaseURL: "https://openrouter.ai/api/v1",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.HistoryLimit <= 0 {
		return errors.New("history_limit must be positive")
	}
	if c.AnalyzeRPM < 0 {
		return errors.New("analyze_rpm must not be negative")
	}
	if c.UpstreamTimeout < 0 || c.CompletionCacheTTL < 0 {
		return errors.New("durations must not be negative")
	}
	if c.OpenRouterBaseURL == "" {
		return errors.New("openrouter_base_url must not be empty")
	}
	return nil
}
