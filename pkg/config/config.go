package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultUserAgent is sent with every page fetch unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Config stores all configuration for the application.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	LogFormat  string `mapstructure:"LOG_FORMAT"`

	FetchTimeout      int    `mapstructure:"FETCH_TIMEOUT"` // in seconds
	FetchUserAgent    string `mapstructure:"FETCH_USER_AGENT"`
	FetchMaxRedirects int    `mapstructure:"FETCH_MAX_REDIRECTS"`
	FetchMaxBodyBytes int64  `mapstructure:"FETCH_MAX_BODY_BYTES"`
	FetchProxies      string `mapstructure:"FETCH_PROXIES"` // comma-separated

	RequestTimeout  int `mapstructure:"REQUEST_TIMEOUT"`  // in seconds
	ShutdownTimeout int `mapstructure:"SHUTDOWN_TIMEOUT"` // in seconds
}

// Load reads configuration from a .env file in the working directory and the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads configuration from the given env-format file, if present, and
// the environment. Environment variables take precedence over the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// A missing file is fine; configuration may come purely from the environment.
	_ = v.ReadInConfig()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("FETCH_TIMEOUT", 10)
	v.SetDefault("FETCH_USER_AGENT", DefaultUserAgent)
	v.SetDefault("FETCH_MAX_REDIRECTS", 10)
	v.SetDefault("FETCH_MAX_BODY_BYTES", 10*1024*1024)
	v.SetDefault("FETCH_PROXIES", "")
	v.SetDefault("REQUEST_TIMEOUT", 60)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that timeouts and limits are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerPort == "" {
		errs = append(errs, errors.New("SERVER_PORT must not be empty"))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_TIMEOUT must be positive, got %d", c.FetchTimeout))
	}
	if c.FetchMaxRedirects < 0 {
		errs = append(errs, fmt.Errorf("FETCH_MAX_REDIRECTS must not be negative, got %d", c.FetchMaxRedirects))
	}
	if c.FetchMaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_MAX_BODY_BYTES must be positive, got %d", c.FetchMaxBodyBytes))
	}
	if c.RequestTimeout <= c.FetchTimeout {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT (%d) must exceed FETCH_TIMEOUT (%d)", c.RequestTimeout, c.FetchTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %d", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// ProxyList splits FETCH_PROXIES into trimmed, non-empty entries.
func (c *Config) ProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.FetchProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}
