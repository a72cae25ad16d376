// Package config loads runtime configuration for the authdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables AUTHDESK_*, after loading a dotenv file
//     (".env" in the working directory, or the file given by -e/-env).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the authentication API
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//	-m string   form mode: "tui" or "prompt"
//
// # Environment
//
//	AUTHDESK_API_URL, AUTHDESK_DB_PATH, AUTHDESK_LOG_PATH,
//	AUTHDESK_LOG_LEVEL, AUTHDESK_FORM_MODE,
//	AUTHDESK_REGISTER_SWITCH_DELAY, AUTHDESK_REQUEST_TIMEOUT
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "2s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000/api",
//	  "database_path": "authdesk.db",
//	  "log_path": "authdesk.log",
//	  "log_level": "info",
//	  "form_mode": "tui",
//	  "register_switch_delay": "2s",
//	  "request_timeout": "0s"
//	}
package config
