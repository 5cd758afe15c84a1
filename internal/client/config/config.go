package config

import "time"

// Config holds runtime settings for the ledgerline CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the path
//     prefix the reverse proxy serves it under (e.g. http://host/api).
//   - RequestTimeout: per-request timeout for API calls.
//   - StoragePath: path of the local JSON file holding persisted client
//     state (auth token, tenant id, preferences).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StoragePath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.StoragePath = "ledgerline.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
