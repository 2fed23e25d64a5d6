package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"

	"server_event_timer/internal/domain/region"
	"server_event_timer/internal/domain/servertime"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	LogLevel         string
	Environment      string
	RegionsFile      string // Empty means the built-in region table
	DefaultRegion    string // Raw selector value, coerced against the table later
	TickSpec         string // Cron spec of the refresh tick
	Template         servertime.Template
	UpcomingCount    int
	LocalOffsetHours int
	NoColor          bool
	Warnings         []string // Non-fatal findings, logged once the logger is up
	Once             bool // Print one snapshot and exit
	AllRegions       bool // With Once, print every region

	hostOffsetInexact bool // LocalOffsetHours was truncated from the host zone
}

// Load reads configuration from environment variables and .env file (if present),
// then applies command line flags from args on top.
func Load(args []string) (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.hostOffsetInexact {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf(
			"host UTC offset is not a whole number of hours, local time uses UTC%+d; set LOCAL_OFFSET_HOURS or --local-offset to override",
			cfg.LocalOffsetHours))
	}
	return cfg, nil
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.RegionsFile = os.Getenv("REGIONS_FILE")

	cfg.DefaultRegion = os.Getenv("DEFAULT_REGION")
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = string(region.EU)
	}

	cfg.TickSpec = os.Getenv("TICK_SPEC")
	if cfg.TickSpec == "" {
		cfg.TickSpec = "@every 1s" // Default: refresh every second
	}

	cfg.Template = servertime.Template12h
	if v := os.Getenv("TIME_TEMPLATE"); v != "" {
		cfg.Template, err = servertime.ParseTemplate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TIME_TEMPLATE: %w", err)
		}
	}

	cfg.UpcomingCount = 3
	if v := os.Getenv("UPCOMING_COUNT"); v != "" {
		cfg.UpcomingCount, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UPCOMING_COUNT: %w", err)
		}
	}

	if v := os.Getenv("LOCAL_OFFSET_HOURS"); v != "" {
		cfg.LocalOffsetHours, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOCAL_OFFSET_HOURS: %w", err)
		}
	} else {
		var exact bool
		cfg.LocalOffsetHours, exact = HostOffsetHours(time.Now())
		cfg.hostOffsetInexact = !exact
	}

	// https://no-color.org: any non-empty value disables color
	cfg.NoColor = os.Getenv("NO_COLOR") != ""

	return cfg, nil
}

func (cfg *AppConfig) applyFlags(args []string) error {
	flagSet := pflag.NewFlagSet("timer", pflag.ContinueOnError)
	flagSet.StringVarP(&cfg.DefaultRegion, "region", "r", cfg.DefaultRegion, "region to show (e.g. EU, US)")
	flagSet.StringVar(&cfg.RegionsFile, "regions-file", cfg.RegionsFile, "YAML file with the region table")
	flagSet.StringVar(&cfg.TickSpec, "tick", cfg.TickSpec, "cron spec of the refresh tick")
	flagSet.IntVarP(&cfg.UpcomingCount, "upcoming", "n", cfg.UpcomingCount, "number of upcoming events to list")
	flagSet.IntVar(&cfg.LocalOffsetHours, "local-offset", cfg.LocalOffsetHours, "local UTC offset in hours")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flagSet.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	flagSet.BoolVar(&cfg.Once, "once", false, "print the schedule once and exit")
	flagSet.BoolVar(&cfg.AllRegions, "all", false, "with --once, print every region")
	template := flagSet.String("template", string(cfg.Template), "time template (12h or 24h)")

	if err := flagSet.Parse(args); err != nil {
		return err // pflag.ErrHelp is passed through for the caller
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	tpl, err := servertime.ParseTemplate(*template)
	if err != nil {
		return fmt.Errorf("invalid --template: %w", err)
	}
	cfg.Template = tpl
	if flagSet.Changed("local-offset") {
		cfg.hostOffsetInexact = false
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return nil
}

func (cfg *AppConfig) validate() error {
	if cfg.UpcomingCount < 0 {
		return fmt.Errorf("upcoming count must not be negative, got %d", cfg.UpcomingCount)
	}
	if cfg.LocalOffsetHours > region.MaxOffsetHours || cfg.LocalOffsetHours < -region.MaxOffsetHours {
		return fmt.Errorf("local offset %d is out of range", cfg.LocalOffsetHours)
	}
	if _, err := cron.ParseStandard(cfg.TickSpec); err != nil {
		return fmt.Errorf("invalid tick spec %q: %w", cfg.TickSpec, err)
	}
	return nil
}

// HostOffsetHours returns the UTC offset of now's zone truncated to whole hours,
// and whether the truncation lost nothing.
func HostOffsetHours(now time.Time) (int, bool) {
	_, offset := now.Zone()
	return offset / 3600, offset%3600 == 0
}
