package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/authdesk/internal/flagx"
)

const envPrefix = "AUTHDESK_"

// parseEnv loads the dotenv file (if any) into the process environment and
// overlays AUTHDESK_* variables onto cfg. Variables already present in the
// environment are not overwritten by the dotenv file. A missing default
// ".env" is ignored; a missing explicit -env file panics, like the other
// stages do on bad input.
func parseEnv(cfg *Config, args []string) {
	if path := flagx.EnvFileFlags(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.APIBaseURL, "API_URL")
	setString(&cfg.DatabasePath, "DB_PATH")
	setString(&cfg.LogPath, "LOG_PATH")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.FormMode, "FORM_MODE")
	setDuration(&cfg.RegisterSwitchDelay, "REGISTER_SWITCH_DELAY")
	setDuration(&cfg.RequestTimeout, "REQUEST_TIMEOUT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
