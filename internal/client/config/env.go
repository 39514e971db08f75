package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig mirrors the Config fields that can come from the environment.
type envConfig struct {
	ServerBaseURL  string        `env:"ADMINCTL_SERVER_URL"`
	TokenDBPath    string        `env:"ADMINCTL_TOKEN_DB"`
	RetryBaseDelay time.Duration `env:"ADMINCTL_RETRY_BASE_DELAY"`
	LogLevel       string        `env:"ADMINCTL_LOG_LEVEL"`
	LogPretty      *bool         `env:"ADMINCTL_LOG_PRETTY,noinit"`
}

// parseEnv overlays Config with values present in the environment. Unset
// variables keep the current values.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process(context.Background(), &ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.TokenDBPath != "" {
		cfg.TokenDBPath = ec.TokenDBPath
	}
	if ec.RetryBaseDelay != 0 {
		cfg.RetryBaseDelay = ec.RetryBaseDelay
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogPretty != nil {
		cfg.LogPretty = *ec.LogPretty
	}
}
