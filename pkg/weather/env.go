package weather

import (
	"os"
	"strings"

	"github.com/beeper/weather-demo/pkg/fetch"
)

// ApplyEnv overrides config fields from environment variables. Unset or blank
// variables leave the existing value alone.
func ApplyEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.APIKey = envOr(cfg.APIKey, os.Getenv("WEATHERAPI_KEY"))
	cfg.Location = envOr(cfg.Location, os.Getenv("WEATHERAPI_LOCATION"))
	cfg.BaseURL = envOr(cfg.BaseURL, os.Getenv("WEATHERAPI_BASE_URL"))
	cfg.Extractor = envOr(cfg.Extractor, os.Getenv("WEATHER_EXTRACTOR"))
	cfg.Logging.MinLevel = envOr(cfg.Logging.MinLevel, os.Getenv("WEATHER_LOG_LEVEL"))
	cfg.Fetch = *fetch.ApplyEnv(&cfg.Fetch)
	return cfg
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}
