package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   database path
//	-k string   storage key
//	-l string   log level
//	-w int      week start, 0 (Sunday) or 1 (Monday)
//
// Only these flags are looked at; see flagx.FilterArgs. Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the calendar database")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "storage key of the event collection")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	weekStart := fs.Int("w", int(cfg.WeekStart), "first day of the week (0 = Sunday, 1 = Monday)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *weekStart != int(time.Sunday) && *weekStart != int(time.Monday) {
		panic(fmt.Sprintf("week start must be 0 or 1, got %d", *weekStart))
	}
	cfg.WeekStart = time.Weekday(*weekStart)
}
