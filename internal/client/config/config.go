package config

import (
	"time"

	"github.com/dmitrijs2005/gophcal/internal/client/services"
)

// Config holds runtime settings for the calendar CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the calendar.
//   - StorageKey: metadata key the event collection is stored under.
//   - LogLevel: debug, info, warn or error.
//   - WeekStart: first column of the month grid (0 = Sunday, 1 = Monday).
//   - BusyTimeout: how long SQLite waits on a locked database.
type Config struct {
	DatabasePath string
	StorageKey   string
	LogLevel     string
	WeekStart    time.Weekday
	BusyTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "calendar.db"
	c.StorageKey = services.DefaultStorageKey
	c.LogLevel = "warn"
	c.WeekStart = time.Sunday
	c.BusyTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file, the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
