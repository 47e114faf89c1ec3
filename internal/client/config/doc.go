// Package config loads runtime configuration for the contactbook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), after loading an optional .env
//     file from the working directory.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the contacts API, e.g. http://127.0.0.1:8080/api
//	-t int      per-request timeout (seconds)
//	-y          assume "yes" for delete confirmations
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-o string   log file ("-" is stdout, os.DevNull discards)
//
// Environment
//
//	CONTACTS_BASE_URL         base URL
//	CONTACTS_REQUEST_TIMEOUT  duration, e.g. "5s"
//	CONTACTS_LOG_LEVEL        log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "5s",
//	  "assume_yes": false,
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "log_file": "/dev/null"
//	}
//
// Invalid input in any source panics; LoadConfig is meant to run once at
// startup.
package config
