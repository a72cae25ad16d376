package config

import (
	"os"
	"time"
)

const (
	FormModeTUI    = "tui"
	FormModePrompt = "prompt"
)

// Config holds runtime settings for the authdesk CLI.
//
// RequestTimeout of zero means outbound API calls have no client-side
// deadline.
type Config struct {
	APIBaseURL          string
	DatabasePath        string
	LogPath             string
	LogLevel            string
	FormMode            string
	RegisterSwitchDelay time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with defaults matching the local development API.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.DatabasePath = "authdesk.db"
	c.LogPath = "authdesk.log"
	c.LogLevel = "info"
	c.FormMode = FormModeTUI
	c.RegisterSwitchDelay = 2 * time.Second
	c.RequestTimeout = 0
}

// LoadConfig builds a Config from defaults, environment, JSON and flags,
// reading the process arguments.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
