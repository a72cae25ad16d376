package config

import (
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
			args: []string{"-a", "http://127.0.0.1:9090/api", "-d", "s.db", "-l", "debug", "-m", "prompt"},
			expected: &Config{
				APIBaseURL: "http://127.0.0.1:9090/api", DatabasePath: "s.db", LogPath: "authdesk.log",
				LogLevel: "debug", FormMode: FormModePrompt, RegisterSwitchDelay: 2 * time.Second,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "1"},
			expected: &Config{
				APIBaseURL: "http://localhost:3000/api", DatabasePath: "authdesk.db", LogPath: "authdesk.log",
				LogLevel: "info", FormMode: FormModeTUI, RegisterSwitchDelay: 2 * time.Second,
			},
		},
		{name: "unknown form mode", args: []string{"-m", "gui"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
