package config

import (
	"time"

	"github.com/earnhub/adminctl/internal/retryx"
)

// Config holds runtime settings for the adminctl CLI.
//
// Fields:
//   - ServerBaseURL: base address of the admin backend.
//   - TokenDBPath: path of the local credentials database holding the
//     opt-in persisted session token.
//   - RetryBaseDelay: first backoff sleep of the shared retry policy.
//   - LogLevel / LogPretty: logging verbosity and output format.
type Config struct {
	ServerBaseURL  string
	TokenDBPath    string
	RetryBaseDelay time.Duration
	LogLevel       string
	LogPretty      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.TokenDBPath = "adminctl.db"
	c.RetryBaseDelay = retryx.DefaultBaseDelay
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// values from JSON (if a config file was given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
