package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Leveler
		wantOK bool
	}{
		{"", nil, true},
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLevel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "json", &slog.HandlerOptions{})
	l.Info("hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestNewWithWriter_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "xml", &slog.HandlerOptions{})
	l.Info("after")

	out := buf.String()
	assert.Contains(t, out, "could not parse logger format")
	assert.Contains(t, out, "msg=after")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, closer := New(Options{File: path, Format: "text", Level: "debug"})
	l.Debug("to file", "n", 1)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "msg=\"to file\""), string(b))

	require.NoError(t, closer.Close())
	assert.ErrorIs(t, closer.Close(), os.ErrClosed, "closer owns the log file")
}

func TestNew_DevNullDiscards(t *testing.T) {
	l, closer := New(Options{File: os.DevNull})
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestNew_UnopenableFileUsesFallback(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "no", "such", "dir", "cli.log")

	t.Run("discard", func(t *testing.T) {
		l, closer := New(Options{File: bad, Fallback: os.DevNull})
		assert.False(t, l.Enabled(t.Context(), slog.LevelError))
		assert.NoError(t, closer.Close())
	})

	t.Run("another file receives the warning", func(t *testing.T) {
		alt := filepath.Join(t.TempDir(), "alt.log")
		l, closer := New(Options{File: bad, Fallback: alt, Level: "loud"})
		l.Info("after")
		require.NoError(t, closer.Close())

		b, err := os.ReadFile(alt)
		require.NoError(t, err)
		out := string(b)
		assert.Contains(t, out, "could not open logger file")
		assert.Contains(t, out, "could not parse logger level")
		assert.Contains(t, out, "msg=after")
	})

	t.Run("broken fallback discards", func(t *testing.T) {
		l, closer := New(Options{File: bad, Fallback: bad})
		assert.False(t, l.Enabled(t.Context(), slog.LevelError))
		assert.NoError(t, closer.Close())
	})
}
