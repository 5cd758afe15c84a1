package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present;
// a missing file is not an error.
//
// Recognized variables:
//
//	LEDGERLINE_API_URL          base API URL
//	LEDGERLINE_REQUEST_TIMEOUT  per-request timeout in seconds
//	LEDGERLINE_STORAGE_PATH     local state file path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LEDGERLINE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("LEDGERLINE_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("LEDGERLINE_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
}
