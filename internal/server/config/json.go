package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/contactbook/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
type JsonConfig struct {
	EndpointAddr   string `json:"endpoint_addr"`
	StoreDSN       string `json:"store_dsn"`
	EndpointPrefix string `json:"endpoint_prefix"`
	LogLevel       string `json:"log_level"`
	LogFormat      string `json:"log_format"`
}

// parseJson loads configuration values from the JSON file named by -c or
// -config into config. Keys missing from the file keep their current value.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&config.EndpointAddr, c.EndpointAddr)
	set(&config.StoreDSN, c.StoreDSN)
	set(&config.EndpointPrefix, c.EndpointPrefix)
	set(&config.LogLevel, c.LogLevel)
	set(&config.LogFormat, c.LogFormat)
}
