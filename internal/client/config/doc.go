// Package config loads runtime configuration for the ledgerline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   path of the local state file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "15s",
//	  "storage_path": "ledgerline.json"
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, RequestTimeout, StoragePath
//   - func LoadConfig() *Config       — builds Config by applying all sources in order
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
