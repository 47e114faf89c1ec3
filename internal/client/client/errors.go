package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("contact not found")
	ErrRejected    = errors.New("request rejected")
	ErrServer      = errors.New("server error")
	ErrBadResponse = errors.New("malformed response")
	ErrInvalidID   = errors.New("contact id is empty")
)

// StatusError reports a non-2xx response. It unwraps to one of the sentinel
// errors above so callers can use errors.Is without looking at codes.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("unexpected status %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusNotFound:
		return ErrNotFound
	case e.Code == http.StatusBadGateway, e.Code == http.StatusServiceUnavailable, e.Code == http.StatusGatewayTimeout:
		return ErrUnavailable
	case e.Code >= 500:
		return ErrServer
	default:
		return ErrRejected
	}
}
