// Package config loads runtime configuration for the userreg CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-l string   log level (debug, info, warn, error)
//	-t int      SQLite busy timeout (seconds)
//
// # JSON schema
//
// Durations may be strings like "5s" or integer nanoseconds:
//
//	{
//	  "database_file": "users.db",
//	  "log_level": "info",
//	  "busy_timeout": "5s"
//	}
package config
