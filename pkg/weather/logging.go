package weather

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"
	"go.mau.fi/zeroconfig"
)

// Compile builds the logger described by the config.
func (c LoggingConfig) Compile() (*zerolog.Logger, error) {
	zc, err := c.toZeroconfig()
	if err != nil {
		return nil, err
	}
	return zc.Compile()
}

func (c LoggingConfig) toZeroconfig() (*zeroconfig.Config, error) {
	c = c.withDefaults()
	level, err := zerolog.ParseLevel(strings.ToLower(c.MinLevel))
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q", c.MinLevel)
	}
	format := zeroconfig.LogFormat(strings.ToLower(c.Format))
	switch format {
	case zeroconfig.LogFormatJSON, zeroconfig.LogFormatPretty, zeroconfig.LogFormatPrettyColored:
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
	return &zeroconfig.Config{
		MinLevel:  ptr.Ptr(level),
		Timestamp: ptr.Ptr(format == zeroconfig.LogFormatJSON),
		Writers: []zeroconfig.WriterConfig{{
			Type:   zeroconfig.WriterTypeStderr,
			Format: format,
		}},
	}, nil
}
