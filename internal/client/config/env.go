package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	APIBaseURL     string        `env:"PUBLIC_API_URL"`
	DBPath         string        `env:"TASKDECK_DB_PATH"`
	LogLevel       string        `env:"TASKDECK_LOG_LEVEL"`
	RequestTimeout time.Duration `env:"TASKDECK_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with the variables that are set.
func parseEnv(cfg *Config, environ map[string]string) error {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.DBPath != "" {
		cfg.DBPath = ec.DBPath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	return nil
}
