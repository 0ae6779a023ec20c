package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	flag "maunium.net/go/mauflag"

	"github.com/beeper/weather-demo/pkg/extract"
	"github.com/beeper/weather-demo/pkg/weather"
)

// Information to find out exactly which commit the binary was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	configPath    = flag.MakeFull("c", "config", "Path to the config file (yaml, json or json5).", defaultConfigPath).String()
	location      = flag.MakeFull("l", "location", "Location to look up, overriding the config.", "").String()
	extractorName = flag.MakeFull("e", "extractor", "Field extractor: "+strings.Join(extract.Names(), " or ")+".", "").String()
	envFile       = flag.MakeFull("d", "env-file", "Dotenv file to load before reading the environment.", ".env").String()
	printExample  = flag.MakeFull("g", "generate-config", "Print the example config and exit.", "false").Bool()
	wantVersion   = flag.MakeFull("v", "version", "Print the version and exit.", "false").Bool()
	wantHelp, _   = flag.MakeHelpFlag()
)

func main() {
	flag.SetHelpTitles(
		"weather-demo - fetch current conditions from weatherapi.com",
		"weather-demo [-hvg] [-c <path>] [-l <location>] [-e <extractor>] [-d <path>]",
	)
	if err := flag.Parse(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(weather.ExitFailure)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(weather.ExitOK)
	} else if *wantVersion {
		fmt.Printf("weather-demo %s (commit %s, built %s)\n", Tag, Commit, BuildTime)
		os.Exit(weather.ExitOK)
	} else if *printExample {
		fmt.Print(weather.ExampleConfig)
		os.Exit(weather.ExitOK)
	}

	// A missing dotenv file is normal; only report ones that exist but don't parse.
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, "Failed to load env file:", err)
	}

	cfg, code := prepareConfig(cliOverrides{
		ConfigPath: *configPath,
		Location:   *location,
		Extractor:  *extractorName,
	}, os.Stderr)
	if code != weather.ExitOK {
		os.Exit(code)
	}

	log, err := cfg.Logging.Compile()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(weather.ExitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code = weather.Run(log.WithContext(ctx), cfg, weather.Options{})
	stop()
	os.Exit(code)
}
