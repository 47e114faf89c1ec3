package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.False(t, c.AssumeYes)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, os.DevNull, c.LogFile)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	withDotEnv(t, filepath.Join(t.TempDir(), "missing.env"))

	path := writeTempJSON(t, "", "", map[string]any{
		"base_url":        "http://json:1/api",
		"request_timeout": "7s",
		"log_level":       "debug",
	})
	t.Setenv(envBaseURL, "http://env:2/api")
	os.Args = []string{"cli", "-c", path, "-t", "3"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://env:2/api", cfg.BaseURL, "env beats JSON")
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout, "flags beat JSON")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_SubSecondTimeoutSurvivesWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	withDotEnv(t, filepath.Join(t.TempDir(), "missing.env"))

	t.Setenv(envRequestTimeout, "500ms")
	os.Args = []string{"cli"}

	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadConfig_JSONTimeoutSurvivesWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	withDotEnv(t, filepath.Join(t.TempDir(), "missing.env"))

	t.Setenv(envRequestTimeout, "")
	path := writeTempJSON(t, "", "", map[string]any{"request_timeout": "1500ms"})
	os.Args = []string{"cli", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}
