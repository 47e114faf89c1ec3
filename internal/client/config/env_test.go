package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDotEnv(t *testing.T, path string) {
	t.Helper()
	prev := dotEnvFile
	dotEnvFile = path
	t.Cleanup(func() { dotEnvFile = prev })
}

func Test_parseEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("process environment", func(t *testing.T) {
		withDotEnv(t, filepath.Join(dir, "absent.env"))
		t.Setenv(envBaseURL, "http://env:8080/api")
		t.Setenv(envRequestTimeout, "1500ms")
		t.Setenv(envLogLevel, "error")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://env:8080/api", cfg.BaseURL)
		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("dotenv file fills unset variables only", func(t *testing.T) {
		p := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(p, []byte(
			"CONTACTS_BASE_URL=http://dotenv:1/api\nCONTACTS_LOG_LEVEL=debug\n"), 0o600))
		withDotEnv(t, p)
		// Registers cleanup so godotenv's Setenv does not leak into other tests.
		t.Setenv(envBaseURL, "")
		require.NoError(t, os.Unsetenv(envBaseURL))
		t.Setenv(envLogLevel, "info")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://dotenv:1/api", cfg.BaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("bad timeout panics", func(t *testing.T) {
		withDotEnv(t, filepath.Join(dir, "absent.env"))
		t.Setenv(envRequestTimeout, "soon")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("zero timeout panics", func(t *testing.T) {
		withDotEnv(t, filepath.Join(dir, "absent.env"))
		t.Setenv(envRequestTimeout, "0s")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
