// Package config loads runtime configuration for the taskdeck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. JSON by default,
//     YAML when the name ends in .yaml or .yml.
//  3. Environment: PUBLIC_API_URL, TASKDECK_DB_PATH, TASKDECK_LOG_LEVEL,
//     TASKDECK_REQUEST_TIMEOUT.
//  4. The API URL stamped at build time (buildinfo.APIURL), which overrides
//     PUBLIC_API_URL.
//  5. Command-line flags.
//
// Supported flags
//
//	-a string     API base URL
//	-d string     local session database path
//	-l string     log level
//	-t duration   per-request timeout
//
// # File schema
//
//	{
//	  "api_base_url": "https://tasks.example.com",
//	  "db_path": "/home/ann/.taskdeck.db",
//	  "log_level": "debug",
//	  "request_timeout": "15s"
//	}
package config
