package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the contactbook CLI.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	AssumeYes      bool
	LogLevel       string
	LogFormat      string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults. Logs are discarded by
// default so they do not interleave with the REPL output.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.AssumeYes = false
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogFile = os.DevNull
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
