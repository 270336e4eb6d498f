package config

import "time"

// Config holds runtime settings for the Ourganize CLI.
//
// Fields:
//   - APIEndpointURL: full URL of the backend GraphQL endpoint.
//   - SiteBaseURL: base URL of the site, used for OAuth redirect links.
//   - DatabasePath: path of the local SQLite cache file.
//   - RequestTimeout: per-request deadline for API calls.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	APIEndpointURL string
	SiteBaseURL    string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointURL = "http://127.0.0.1:8000/graphql"
	c.SiteBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "ourganize.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
