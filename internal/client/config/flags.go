package config

import (
	"flag"
	"fmt"

	"github.com/dmitrijs2005/authdesk/internal/flagx"
)

// parseFlags overlays cfg with -a, -d, -l and -m. Other arguments are
// filtered out first so the JSON/env stages can own their flags. An invalid
// form mode panics.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the authentication API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.FormMode, "m", cfg.FormMode, "form mode: tui or prompt")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	if cfg.FormMode != FormModeTUI && cfg.FormMode != FormModePrompt {
		panic(fmt.Sprintf("unknown form mode %q", cfg.FormMode))
	}
}
