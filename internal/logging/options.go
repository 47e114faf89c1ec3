package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the handler built by New.
//
//   - Level:    debug, info, warn or error (empty means slog's default, info)
//   - Format:   text or json
//   - File:     append to this file; "" or "-" is stdout, os.DevNull discards
//   - Fallback: where to log when File cannot be opened, with the same
//     spellings as File. The CLI sets os.DevNull so a bad path never spills
//     log lines into the REPL.
type Options struct {
	Level    string
	Format   string
	File     string
	Fallback string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// openOutput resolves a File/Fallback value. A nil writer means discard.
func openOutput(name string) (io.Writer, io.Closer, error) {
	switch name {
	case "", "-":
		return os.Stdout, nopCloser{}, nil
	case os.DevNull:
		return nil, nopCloser{}, nil
	default:
		f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}

// New builds an *slog.Logger from options together with the closer of its
// output file. Unparseable options fall back to their defaults and the
// problem is reported through the resulting logger instead of failing
// startup.
func New(options Options) (*slog.Logger, io.Closer) {
	var warnings [][]any

	level, ok := parseLevel(options.Level)
	if !ok {
		warnings = append(warnings, []any{"could not parse logger level", "level", options.Level})
	}
	opts := slog.HandlerOptions{Level: level}

	output, closer, err := openOutput(options.File)
	if err != nil {
		warnings = append(warnings, []any{"could not open logger file", "file", options.File, "err", err})
		output, closer, err = openOutput(options.Fallback)
		if err != nil {
			output, closer = nil, nopCloser{}
		}
	}

	if output == nil {
		return slog.New(slog.DiscardHandler), closer
	}

	logger := newWithWriter(output, options.Format, &opts)
	for _, w := range warnings {
		logger.Warn(w[0].(string), w[1:]...)
	}
	return logger, closer
}

func newWithWriter(w io.Writer, format string, opts *slog.HandlerOptions) *slog.Logger {
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts))
	default:
		logger := slog.New(slog.NewTextHandler(w, opts))
		logger.Warn("could not parse logger format", "format", format)
		return logger
	}
}
