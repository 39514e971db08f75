package config

import (
	"encoding/json"
	"os"

	"github.com/earnhub/adminctl/internal/flagx"
	"github.com/earnhub/adminctl/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify delays either as strings like "400ms"
// or as integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	TokenDBPath    *string         `json:"token_db_path"`
	RetryBaseDelay *timex.Duration `json:"retry_base_delay"`
	LogLevel       *string         `json:"log_level"`
	LogPretty      *bool           `json:"log_pretty"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. Absent file means no overlay; fields missing from the
// file keep their current values. Read or parse errors panic, matching the
// defaults → JSON → env → flags pipeline where a broken config file should
// stop startup.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
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

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.TokenDBPath != nil {
		cfg.TokenDBPath = *jc.TokenDBPath
	}
	if jc.RetryBaseDelay != nil {
		cfg.RetryBaseDelay = jc.RetryBaseDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
}
