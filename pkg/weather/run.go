package weather

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/beeper/weather-demo/pkg/extract"
	"github.com/beeper/weather-demo/pkg/fetch"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

const noResponseMessage = "Error: No response received from API"

// Options carries the process streams and logger. Nil fields fall back to
// os.Stdout, os.Stderr and the logger attached to the context.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zerolog.Logger
}

func (o Options) withDefaults(ctx context.Context) Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = zerolog.Ctx(ctx)
	}
	return o
}

// Run performs one current-conditions lookup and prints the result. It returns
// the process exit code.
func Run(ctx context.Context, cfg *Config, opts Options) int {
	opts = opts.withDefaults(ctx)
	cfg = cfg.WithDefaults()
	log := opts.Logger.With().
		Str("run_id", xid.New().String()).
		Str("location", cfg.Location).
		Logger()
	ctx = log.WithContext(ctx)

	ext, err := extract.ByName(cfg.Extractor)
	if err != nil {
		log.Err(err).Msg("Invalid extractor")
		return ExitFailure
	}

	printBanner(opts.Stdout, cfg.Location)

	resp, err := fetch.Get(ctx, fetch.Request{URL: cfg.RequestURL()}, &cfg.Fetch)
	if err != nil {
		log.Err(err).Msg("Weather request failed")
		fmt.Fprintln(opts.Stderr, noResponseMessage)
		return ExitFailure
	}
	if !resp.OK() {
		evt := log.Warn().Int("status", resp.Status)
		if apiErr, ok := ParseAPIError(resp.Text()); ok {
			evt.Int64("api_code", apiErr.Code).Str("api_message", apiErr.Message)
		}
		evt.Msg("Weather API returned an error status")
	}
	if resp.Truncated {
		log.Warn().Int64("max_bytes", cfg.Fetch.MaxBytes).Msg("Response body was truncated")
	}

	body := resp.Text()
	printRaw(opts.Stdout, body)

	report := BuildReport(body, ext)
	if missing := report.Missing(); len(missing) > 0 {
		log.Debug().Strs("fields", missing).Str("extractor", ext.Name()).Msg("Some fields were not found")
	}
	PrintReport(opts.Stdout, report)
	return ExitOK
}
