package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000/api", c.APIBaseURL)
	assert.Equal(t, "authdesk.db", c.DatabasePath)
	assert.Equal(t, "authdesk.log", c.LogPath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, FormModeTUI, c.FormMode)
	assert.Equal(t, 2*time.Second, c.RegisterSwitchDelay)
	assert.Zero(t, c.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv("AUTHDESK_API_URL", "http://env:1/api")
	t.Setenv("AUTHDESK_LOG_LEVEL", "debug")
	t.Setenv("AUTHDESK_REGISTER_SWITCH_DELAY", "5s")

	path := writeTempJSON(t, map[string]any{
		"api_base_url":  "http://json:2/api",
		"database_path": "json.db",
	})

	cfg := loadConfig([]string{"-c", path, "-d", "flag.db"})

	require.NotNil(t, cfg)
	assert.Equal(t, "http://json:2/api", cfg.APIBaseURL, "json overrides env")
	assert.Equal(t, "flag.db", cfg.DatabasePath, "flags override json")
	assert.Equal(t, "debug", cfg.LogLevel, "env overrides defaults")
	assert.Equal(t, 5*time.Second, cfg.RegisterSwitchDelay)
	assert.Equal(t, "authdesk.log", cfg.LogPath, "untouched fields keep defaults")
}
