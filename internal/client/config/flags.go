package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/flagx"
)

var errInvalidTimeout = errors.New("request timeout must be positive")

// parseTimeout accepts either a number of seconds ("4", "0.5") or a Go
// duration ("500ms", "2m").
func parseTimeout(s string) (time.Duration, error) {
	var d time.Duration
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		d = time.Duration(secs * float64(time.Second))
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
	}
	if d <= 0 {
		return 0, errInvalidTimeout
	}
	return d, nil
}

// parseFlags populates Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.Filter, to avoid interference with other components. Fields
// whose flag is absent keep the value from earlier layers.
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], []string{"-a", "-t", "-l", "-f", "-o"}, []string{"-y"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the contacts API")
	fs.Func("t", "request timeout (seconds, or a duration such as 500ms)", func(s string) error {
		d, err := parseTimeout(s)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = d
		return nil
	})
	fs.BoolVar(&cfg.AssumeYes, "y", cfg.AssumeYes, "assume yes on delete confirmation")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text or json)")
	fs.StringVar(&cfg.LogFile, "o", cfg.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
