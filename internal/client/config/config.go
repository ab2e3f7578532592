// Package config assembles runtime settings for the FoodCourt CLI.
//
// Sources are overlaid in order, later ones winning:
// defaults -> .env file / environment -> JSON file (-c/-config) -> flags.
package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	// BaseURL is the root of the remote food-ordering API.
	BaseURL string
	// APIKey is the static apiKey header value required by every route.
	APIKey string
	// DatabaseFile is the sqlite file holding client-local state
	// (the persisted session token).
	DatabaseFile string
	// RequestTimeout bounds each individual API call.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with the public sandbox endpoint settings.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://api-bootcamp.do.dibimbing.id"
	c.APIKey = "w05KkI9AWhKxzvPFtXotUva-"
	c.DatabaseFile = "foodcourt.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
