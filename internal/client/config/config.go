package config

import "time"

// Config holds runtime settings for the sharebox CLI.
//
// RequestTimeout bounds every single HTTP request the session issues; the
// library itself never retries.
type Config struct {
	BaseURL        string
	APIKey         string
	Email          string
	RequestTimeout time.Duration
	MirrorDBPath   string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://open.example.com/1"
	c.RequestTimeout = 30 * time.Second
	c.MirrorDBPath = "shares.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
