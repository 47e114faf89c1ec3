package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL      string
	http         *http.Client
	logger       logging.Logger
	newRequestID func() string
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithHTTPClient uses a copy of hc for requests. nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithTimeout bounds every request made through the client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewHTTPClient builds a client for the service rooted at baseURL, e.g.
// "http://127.0.0.1:8080/api". The contacts resource lives under it.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url: missing host in %q", baseURL)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(u.String(), "/"),
		http:         &http.Client{},
		logger:       logging.Discard(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("module", "api_client")
	return c, nil
}

func (c *HTTPClient) collectionURL() string {
	return c.baseURL + common.ContactsPath
}

func (c *HTTPClient) itemURL(id string) string {
	return c.collectionURL() + "/" + url.PathEscape(id)
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	if err := c.do(ctx, http.MethodGet, c.collectionURL(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Contact{}
	}
	return out, nil
}

func (c *HTTPClient) Create(ctx context.Context, fields models.ContactFields) (*models.Contact, error) {
	return c.save(ctx, http.MethodPost, c.collectionURL(), fields)
}

func (c *HTTPClient) Update(ctx context.Context, id string, fields models.ContactFields) (*models.Contact, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	return c.save(ctx, http.MethodPut, c.itemURL(id), fields)
}

// save issues a write. The status code alone decides success; a missing or
// undecodable echo of the contact only yields a nil result.
func (c *HTTPClient) save(ctx context.Context, method, target string, fields models.ContactFields) (*models.Contact, error) {
	out := &models.Contact{}
	err := c.do(ctx, method, target, fields, out)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, io.EOF):
		return nil, nil
	case errors.Is(err, ErrBadResponse):
		c.logger.Warn(ctx, "write acknowledged with unreadable body", "method", method, "url", target, "err", err)
		return nil, nil
	default:
		return nil, err
	}
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

// Close releases idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one JSON round trip. body is marshalled when non-nil; out is
// decoded from a 2xx response when non-nil, otherwise the body is drained.
func (c *HTTPClient) do(ctx context.Context, method, target string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api call",
		"method", method, "url", target, "status", resp.StatusCode,
		"request_id", requestID, "dur", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}

func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
