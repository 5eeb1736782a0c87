// Package config holds runtime settings for the invoicedesk CLI and loads
// them from defaults, an optional JSON file and command-line flags, in that
// order of precedence.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote invoice API, including any path
//     prefix (e.g. "http://127.0.0.1:8080/api").
//   - DatabasePath: location of the local SQLite settings database.
//   - RequestTimeout: overall per-request deadline for API calls.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.DatabasePath = "invoicedesk.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
