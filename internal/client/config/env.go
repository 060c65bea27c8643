package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDatabasePath = "GOPHCAL_DB"
	EnvStorageKey   = "GOPHCAL_STORAGE_KEY"
	EnvLogLevel     = "GOPHCAL_LOG_LEVEL"
	EnvWeekStart    = "GOPHCAL_WEEK_START"
	EnvBusyTimeout  = "GOPHCAL_BUSY_TIMEOUT"
)

// dotenvFile is loaded into the process environment before parseEnv runs.
// Variables already set in the environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with GOPHCAL_* variables. Empty variables are
// ignored. Invalid values panic.
func parseEnv(cfg *Config) {
	// a missing .env is the common case
	_ = godotenv.Load(dotenvFile)

	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvStorageKey); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvWeekStart); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || (n != int(time.Sunday) && n != int(time.Monday)) {
			panic(fmt.Sprintf("%s must be 0 or 1, got %q", EnvWeekStart, v))
		}
		cfg.WeekStart = time.Weekday(n)
	}
	if v := os.Getenv(EnvBusyTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Sprintf("%s: %v", EnvBusyTimeout, err))
		}
		cfg.BusyTimeout = d
	}
}
