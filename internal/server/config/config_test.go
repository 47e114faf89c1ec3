package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "memory", c.StoreDSN)
	assert.Equal(t, "/api", c.EndpointPrefix)
}

func TestLoadConfig_Layers(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "server.json")
	b, err := json.Marshal(map[string]any{
		"endpoint_addr": ":9000",
		"store_dsn":     "sqlite:contacts.db",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"server", "-c", path, "-a", ":9100", "-f", "text"}
	cfg := LoadConfig()

	want := &Config{
		EndpointAddr:   ":9100",
		StoreDSN:       "sqlite:contacts.db",
		EndpointPrefix: "/api",
		LogLevel:       "info",
		LogFormat:      "text",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags_Panics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"server", "-a"}
	require.Panics(t, func() { parseFlags(&Config{}) })
}

func TestParseJson_Invalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	os.Args = []string{"server", "-config", bad}
	require.Panics(t, func() { parseJson(&Config{}) })
}
