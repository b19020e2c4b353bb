// Package config loads runtime configuration for the Conduit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables, after loading a .env file from the working
//     directory if one exists.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the Conduit API (without /api)
//	-d string     path of the local SQLite database
//	-p int        articles per page
//	-l string     log level: debug, info, warn or error
//	-t duration   per-request timeout, 0 for none
//
// Environment
//
//	CONDUIT_API_URL, CONDUIT_DB_PATH, CONDUIT_PAGE_SIZE,
//	CONDUIT_LOG_LEVEL, CONDUIT_REQUEST_TIMEOUT
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "api_url": "https://api.realworld.io",
//	  "db_path": "conduit.db",
//	  "page_size": 10,
//	  "log_level": "info",
//	  "request_timeout": "10s"
//	}
package config
