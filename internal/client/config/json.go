package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/foodcourt/internal/flagx"
	"github.com/dmitrijs2005/foodcourt/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "15s"
// or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	APIKey         string         `json:"api_key"`
	DatabaseFile   string         `json:"database_file"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flag means no JSON is loaded. Read or
// unmarshal errors panic (the CLI cannot start with a broken config file).
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
