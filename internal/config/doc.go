// Package config loads runtime configuration for the FleetDesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local sqlite store
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_dsn": "fleetdesk.db",
//	  "log_level": "info"
//	}
package config
