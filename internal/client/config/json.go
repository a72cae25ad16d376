package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authdesk/internal/flagx"
	"github.com/dmitrijs2005/authdesk/internal/timex"
)

// JsonConfig is the JSON DTO. Pointer fields distinguish "absent" from
// "empty", so a partial file only overrides what it names.
type JsonConfig struct {
	APIBaseURL          *string         `json:"api_base_url"`
	DatabasePath        *string         `json:"database_path"`
	LogPath             *string         `json:"log_path"`
	LogLevel            *string         `json:"log_level"`
	FormMode            *string         `json:"form_mode"`
	RegisterSwitchDelay *timex.Duration `json:"register_switch_delay"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without
// such a flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogPath != nil {
		cfg.LogPath = *jc.LogPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.FormMode != nil {
		cfg.FormMode = *jc.FormMode
	}
	if jc.RegisterSwitchDelay != nil {
		cfg.RegisterSwitchDelay = jc.RegisterSwitchDelay.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
