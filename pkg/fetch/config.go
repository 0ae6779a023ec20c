package fetch

import "strings"

const (
	DefaultTimeoutSecs  = 0
	DefaultMaxRedirects = 10
	DefaultMaxBytes     = 0
	DefaultUserAgent    = "weather-demo/0.1.0"
)

// Config controls how the single outbound request is made.
type Config struct {
	// TimeoutSecs bounds the whole exchange. Zero leaves the request unbounded,
	// so only the caller's context can stop it.
	TimeoutSecs  int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	UserAgent    string `yaml:"user_agent" json:"user_agent"`
	MaxRedirects int    `yaml:"max_redirects" json:"max_redirects"`
	// MaxBytes caps how much of the body is kept. Zero reads the whole body.
	MaxBytes     int64  `yaml:"max_bytes" json:"max_bytes"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.TimeoutSecs < 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = DefaultMaxRedirects
	}
	if c.MaxBytes < 0 {
		c.MaxBytes = DefaultMaxBytes
	}
	return c
}
