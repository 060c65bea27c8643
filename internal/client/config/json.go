package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/flagx"
	"github.com/dmitrijs2005/gophcal/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig is a DTO used exclusively for config file unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path" yaml:"database_path"`
	StorageKey   *string         `json:"storage_key" yaml:"storage_key"`
	LogLevel     *string         `json:"log_level" yaml:"log_level"`
	WeekStart    *int            `json:"week_start" yaml:"week_start"`
	BusyTimeout  *timex.Duration `json:"busy_timeout" yaml:"busy_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &jc)
	default:
		err = json.Unmarshal(data, &jc)
	}
	if err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.StorageKey != nil {
		cfg.StorageKey = *jc.StorageKey
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.WeekStart != nil {
		cfg.WeekStart = time.Weekday(*jc.WeekStart)
	}
	if jc.BusyTimeout != nil {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
}
