package config

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// envConfig is a DTO for environment decoding. All fields are optional;
// unset variables leave the corresponding Config values untouched.
type envConfig struct {
	BaseURL        string        `env:"FOODCOURT_BASE_URL"`
	APIKey         string        `env:"FOODCOURT_API_KEY"`
	DatabaseFile   string        `env:"FOODCOURT_DB"`
	RequestTimeout time.Duration `env:"FOODCOURT_TIMEOUT"`
}

// parseEnv overlays Config with values from a .env file (if present in the
// working directory) and the process environment.
func parseEnv(cfg *Config) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		panic(err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.APIKey != "" {
		cfg.APIKey = ec.APIKey
	}
	if ec.DatabaseFile != "" {
		cfg.DatabaseFile = ec.DatabaseFile
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
