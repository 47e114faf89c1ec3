// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the contacts server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP endpoint.
//   - StoreDSN: "memory", "sqlite:<path>" or a postgres:// URL (pgx).
//   - EndpointPrefix: path prefix of the contacts API, e.g. "/api".
//   - LogLevel / LogFormat: see logging.Options.
type Config struct {
	EndpointAddr   string
	StoreDSN       string
	EndpointPrefix string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.StoreDSN = "memory"
	c.EndpointPrefix = "/api"
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
