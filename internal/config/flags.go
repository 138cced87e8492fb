package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ayanmanna123/sessionwatch/internal/ui"
	"github.com/ayanmanna123/sessionwatch/internal/util"
)

// Config carries everything main needs to wire the watcher together.
type Config struct {
	Source      string
	Refresh     time.Duration
	Location    *time.Location
	ShowVersion bool
}

// DefaultRefresh is the list-level cadence: the session list re-evaluates
// once a minute unless overridden.
const DefaultRefresh = 60 * time.Second

func formatError(err error) string {
	return ui.Current.Error.Render(err.Error())
}

// ParseFlags parses the command line into a Config, printing a styled error
// and exiting on unusable input.
func ParseFlags(version string) (*Config, error) {
	flags := flag.NewFlagSet("sessionwatch", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Print(ui.HelpView(version))
	}

	source := flags.String("source", "", "Backend base URL or snapshot file with session data")
	flags.StringVar(source, "s", "", "Backend base URL or snapshot file with session data")
	refresh := flags.String("refresh", "", "List refresh cadence (e.g., \"60\" or \"90s\")")
	flags.StringVar(refresh, "r", "", "List refresh cadence (e.g., \"60\" or \"90s\")")
	zone := flags.String("tz", "", "IANA time zone for session times (default local)")
	flags.StringVar(zone, "z", "", "IANA time zone for session times (default local)")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		fmt.Printf("Session Watch Version: %s\n", version)
		os.Exit(0)
	}

	if *source == "" {
		fmt.Println(formatError(fmt.Errorf("a session source is required (-s <url or file>)")))
		os.Exit(1)
	}

	interval := DefaultRefresh
	if *refresh != "" {
		d, err := util.ParseInterval(*refresh)
		if err != nil {
			fmt.Println(formatError(err))
			os.Exit(1)
		}
		if d <= 0 {
			fmt.Println(formatError(fmt.Errorf("refresh cadence must be positive")))
			os.Exit(1)
		}
		interval = d
	}

	loc := time.Local
	if *zone != "" {
		l, err := time.LoadLocation(*zone)
		if err != nil {
			fmt.Println(formatError(fmt.Errorf("unknown time zone: %s", *zone)))
			os.Exit(1)
		}
		loc = l
	}

	return &Config{
		Source:      *source,
		Refresh:     interval,
		Location:    loc,
		ShowVersion: *showVersion,
	}, nil
}
