// Package common defines shared constants and sentinel errors used across
// client and server layers of contactbook. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Request-level errors.
	ErrorMalformedBody = errors.New("malformed request body")
	ErrorInvalidID     = errors.New("invalid contact id")
)
