// Package config loads the console's runtime settings: defaults first, then
// an optional JSON file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the consertos console.
//
// Fields:
//   - ServerBaseURL: root URL of the backend REST API.
//   - RequestTimeout: transport timeout applied by the API gateway.
//   - DatabasePath: path of the local SQLite file holding the session.
//   - PageSize: records per page for list and search.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "consertos.db"
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
