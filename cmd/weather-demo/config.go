package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/beeper/weather-demo/pkg/weather"
)

const defaultConfigPath = "config.yaml"

// cliOverrides are the config-related flag values. Empty strings mean the
// flag wasn't given.
type cliOverrides struct {
	ConfigPath string
	Location   string
	Extractor  string
}

// configRequired reports whether the config file must exist. Only the default
// path is allowed to be missing, so a mistyped -c path is never ignored.
func (o cliOverrides) configRequired() bool {
	path := strings.TrimSpace(o.ConfigPath)
	return path != "" && path != defaultConfigPath
}

// loadConfig layers the flags over weather.Load (defaults, file, environment)
// and validates the result.
func loadConfig(o cliOverrides) (*weather.Config, error) {
	cfg, err := weather.Load(o.ConfigPath, o.configRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if location := strings.TrimSpace(o.Location); location != "" {
		cfg.Location = location
	}
	if extractor := strings.TrimSpace(o.Extractor); extractor != "" {
		cfg.Extractor = extractor
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// prepareConfig is loadConfig with the error reported to stderr and turned
// into an exit code.
func prepareConfig(o cliOverrides, stderr io.Writer) (*weather.Config, int) {
	cfg, err := loadConfig(o)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return nil, weather.ExitFailure
	}
	return cfg, weather.ExitOK
}
