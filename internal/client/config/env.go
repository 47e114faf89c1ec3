package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envBaseURL        = "CONTACTS_BASE_URL"
	envRequestTimeout = "CONTACTS_REQUEST_TIMEOUT"
	envLogLevel       = "CONTACTS_LOG_LEVEL"
)

// dotEnvFile is read before the environment is consulted. Variables already
// set in the process environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays Config with CONTACTS_* variables. A missing .env file is
// fine; a malformed one or an unparseable timeout panics.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		if d <= 0 {
			panic(errInvalidTimeout)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
