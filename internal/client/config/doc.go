// Package config loads runtime configuration for the calendar CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. GOPHCAL_* environment variables, also read from a .env file in the
//     working directory when one exists.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-k string   storage key of the event collection
//	-l string   log level (debug, info, warn, error)
//	-w int      first day of the week (0 = Sunday, 1 = Monday)
//
// Environment
//
//	GOPHCAL_DB, GOPHCAL_STORAGE_KEY, GOPHCAL_LOG_LEVEL,
//	GOPHCAL_WEEK_START (0 or 1), GOPHCAL_BUSY_TIMEOUT ("5s")
//
// # File schema
//
// Every key is optional; absent keys keep the default. busy_timeout is a
// timex.Duration, so both "5s" and integer nanoseconds are accepted. A file
// named *.yaml or *.yml uses the same keys in YAML:
//
//	{
//	  "database_path": "/home/me/.gophcal/calendar.db",
//	  "storage_key": "calendar_events",
//	  "log_level": "info",
//	  "week_start": 1,
//	  "busy_timeout": "5s"
//	}
package config
