// Package config loads runtime configuration for the adminctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables with the ADMINCTL_ prefix.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base address of the admin backend
//	-d string   path of the local credentials database
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for delays, so values can be either
// strings like "400ms" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.example.com",
//	  "token_db_path": "adminctl.db",
//	  "retry_base_delay": "400ms",
//	  "log_level": "info",
//	  "log_pretty": true
//	}
//
// Environment variables
//
//	ADMINCTL_SERVER_URL, ADMINCTL_TOKEN_DB, ADMINCTL_RETRY_BASE_DELAY,
//	ADMINCTL_LOG_LEVEL, ADMINCTL_LOG_PRETTY
package config
