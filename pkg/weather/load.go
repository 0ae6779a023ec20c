package weather

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

// Load builds the config from the embedded defaults, the file at path (if
// any) and the environment, in that order. A missing file is only an error
// when mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(ExampleConfig), &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !mustExist:
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err = decodeConfig(path, data, &cfg); err != nil {
				return nil, err
			}
		}
	}
	return ApplyEnv(&cfg).WithDefaults(), nil
}

func decodeConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		if err := json5.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("json5 parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("yaml parse %s: %w", path, err)
		}
	}
	return nil
}
