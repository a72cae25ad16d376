package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	t.Setenv("AUTHDESK_API_URL", "http://api.test/api")
	t.Setenv("AUTHDESK_FORM_MODE", FormModePrompt)
	t.Setenv("AUTHDESK_REQUEST_TIMEOUT", "750ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, nil)

	assert.Equal(t, "http://api.test/api", cfg.APIBaseURL)
	assert.Equal(t, FormModePrompt, cfg.FormMode)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("AUTHDESK_DB_PATH=dotenv.db\nAUTHDESK_LOG_PATH=dotenv.log\n"), 0o600))

	// godotenv writes into the process environment; register cleanup first.
	t.Setenv("AUTHDESK_DB_PATH", "")
	t.Setenv("AUTHDESK_LOG_PATH", "")
	require.NoError(t, os.Unsetenv("AUTHDESK_DB_PATH"))
	require.NoError(t, os.Unsetenv("AUTHDESK_LOG_PATH"))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, []string{"-e", path})

	assert.Equal(t, "dotenv.db", cfg.DatabasePath)
	assert.Equal(t, "dotenv.log", cfg.LogPath)
}

func TestParseEnv_ExistingVariableWinsOverDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("AUTHDESK_LOG_LEVEL=error\n"), 0o600))
	t.Setenv("AUTHDESK_LOG_LEVEL", "warn")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, []string{"-env=" + path})

	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnv_Panics(t *testing.T) {
	t.Run("missing explicit dotenv file", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseEnv(cfg, []string{"-e", filepath.Join(t.TempDir(), "nope.env")}) })
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("AUTHDESK_REGISTER_SWITCH_DELAY", "later")
		cfg := &Config{}
		require.Panics(t, func() { parseEnv(cfg, nil) })
	})
}
