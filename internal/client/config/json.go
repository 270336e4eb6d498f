package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ourganize/ourganize-cli/internal/flagx"
	"github.com/ourganize/ourganize-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIEndpointURL string         `json:"api_endpoint_url"`
	SiteBaseURL    string         `json:"site_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag via flagx.JsonConfigFlags();
// when no path is given, nothing is loaded. Read or unmarshal errors panic
// (caller should recover if desired). Only fields present in the JSON
// override the current values.
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

	if jc.APIEndpointURL != "" {
		cfg.APIEndpointURL = jc.APIEndpointURL
	}
	if jc.SiteBaseURL != "" {
		cfg.SiteBaseURL = jc.SiteBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
