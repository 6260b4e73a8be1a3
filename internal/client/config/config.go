package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/buildinfo"
)

// Config holds runtime settings for the taskdeck CLI.
type Config struct {
	// APIBaseURL is the absolute base URL of the REST backend.
	APIBaseURL string
	// DBPath is the SQLite file holding the persisted session.
	DBPath string

	LogLevel string

	// RequestTimeout bounds each HTTP call; zero means no limit.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DBPath = "taskdeck.db"
	c.LogLevel = "warn"
	c.RequestTimeout = 0
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("api base url is empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db path is empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout %s is negative", c.RequestTimeout)
	}
	return nil
}

// Load builds a Config from defaults, the optional config file named by -c
// or -config, the environment, the build-time API URL and finally flags.
// Later sources win. A nil environ reads the process environment.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if buildinfo.APIURL != "" {
		cfg.APIBaseURL = buildinfo.APIURL
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], nil)
}
