package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"gcal", "-d", "/tmp/cal.db", "-k", "events_v1", "-l", "debug", "-w", "1"},
			expected: &Config{
				DatabasePath: "/tmp/cal.db",
				StorageKey:   "events_v1",
				LogLevel:     "debug",
				WeekStart:    time.Monday,
				BusyTimeout:  5 * time.Second,
			},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"gcal", "-c", "conf.json", "-x", "1"},
			expected: &Config{
				DatabasePath: "calendar.db",
				StorageKey:   "calendar_events",
				LogLevel:     "warn",
				WeekStart:    time.Sunday,
				BusyTimeout:  5 * time.Second,
			},
		},
		{name: "week start not a number", args: []string{"gcal", "-w", "monday"}, expectPanic: true},
		{name: "week start out of range", args: []string{"gcal", "-w", "3"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
