package weather

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/zeroconfig"

	"github.com/beeper/weather-demo/pkg/extract"
	"github.com/beeper/weather-demo/pkg/fetch"
)

//go:embed example-config.yaml
var ExampleConfig string

// PlaceholderAPIKey is the value shipped in old copies of the demo. It is
// rejected so the request isn't sent with a key that can never work.
const PlaceholderAPIKey = "YOUR_API_KEY_HERE"

const (
	DefaultLocation = "Fullerton"
	DefaultBaseURL  = "http://api.weatherapi.com"
	CurrentPath     = "/v1/current.json"
)

var (
	ErrMissingAPIKey   = errors.New("api_key is not set")
	ErrMissingLocation = errors.New("location is not set")
)

// Config is the full runtime configuration.
type Config struct {
	APIKey    string `yaml:"api_key" json:"api_key"`
	Location  string `yaml:"location" json:"location"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Extractor string `yaml:"extractor" json:"extractor"`

	Fetch   fetch.Config  `yaml:"fetch" json:"fetch"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig is a reduced view of zeroconfig.Config with a single stderr writer.
type LoggingConfig struct {
	MinLevel string `yaml:"min_level" json:"min_level"`
	Format   string `yaml:"format" json:"format"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.Location = strings.TrimSpace(c.Location)
	if c.Location == "" {
		c.Location = DefaultLocation
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(c.Extractor) == "" {
		c.Extractor = extract.DefaultExtractor
	}
	c.Fetch = *c.Fetch.WithDefaults()
	c.Logging = c.Logging.withDefaults()
	return c
}

func (c LoggingConfig) withDefaults() LoggingConfig {
	if c.MinLevel == "" {
		c.MinLevel = zerolog.WarnLevel.String()
	}
	if c.Format == "" {
		c.Format = string(zeroconfig.LogFormatPrettyColored)
	}
	return c
}

// Validate checks that everything needed for the request is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.APIKey == PlaceholderAPIKey {
		return fmt.Errorf("%w: replace the %s placeholder with a real key", ErrMissingAPIKey, PlaceholderAPIKey)
	}
	if c.Location == "" {
		return ErrMissingLocation
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http(s) url", c.BaseURL)
	}
	if _, err = extract.ByName(c.Extractor); err != nil {
		return err
	}
	if _, err = c.Logging.Compile(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	return nil
}

// RequestURL builds the current-conditions URL for the configured location.
func (c *Config) RequestURL() string {
	params := url.Values{}
	params.Add("key", c.APIKey)
	params.Add("q", c.Location)
	return strings.TrimRight(c.BaseURL, "/") + CurrentPath + "?" + params.Encode()
}
