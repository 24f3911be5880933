// Package config loads, normalizes, and validates fileorg configuration.
//
// Settings come from an optional TOML file (~/.config/fileorg/config.toml or
// the path given with --config), with FILEORG_LOG_LEVEL and FILEORG_LOG_FORMAT
// as environment fallbacks. The file may also carry [[categories]] tables that
// replace the predefined rules table. Nothing is ever written back except by
// CreateSample.
package config
