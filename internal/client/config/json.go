package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/sharebox/internal/flagx"
	"github.com/dmitrijs2005/sharebox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	APIKey         string         `json:"api_key"`
	Email          string         `json:"email"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	MirrorDBPath   string         `json:"mirror_db_path"`
	Verbose        *bool          `json:"verbose"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file path means no JSON stage; empty JSON fields
// leave the current value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.Email != "" {
		cfg.Email = jc.Email
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.MirrorDBPath != "" {
		cfg.MirrorDBPath = jc.MirrorDBPath
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
