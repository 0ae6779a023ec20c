package fetch

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnv overrides config fields from environment variables.
func ApplyEnv(cfg *Config) *Config {
	cfg = cfg.WithDefaults()
	if secs, ok := envInt("WEATHER_FETCH_TIMEOUT_SECONDS"); ok {
		cfg.TimeoutSecs = secs
	}
	if ua := strings.TrimSpace(os.Getenv("WEATHER_FETCH_USER_AGENT")); ua != "" {
		cfg.UserAgent = ua
	}
	return cfg
}

func envInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return val, true
}
