package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voxboard-dev/voxboard/internal/session"
)

// Client talks to the platform's REST API. It is constructed once per
// process with a fixed base URL and attaches the bearer token from the
// session store to every request that has one. It does not retry,
// cache, or dedupe in-flight requests.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     *logrus.Entry
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use this
// to install a spying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New creates a Client for the given base URL. The session store is
// consulted on every request for the current token; it is never
// written to from here.
func New(baseURL string, store session.Store, logger *logrus.Entry, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		log:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one HTTP request against the API. A non-2xx response is
// returned as *Error; transport failures are wrapped with context so
// the message is never empty. When out is non-nil the response body is
// decoded into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	full := c.baseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, full, body)
	if err != nil {
		return fmt.Errorf("building request %s %s: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Attach the bearer token when the session has one. A missing token
	// simply omits the header; it is not an error at this layer.
	sess, err := c.store.Load(ctx)
	if err != nil {
		c.log.WithError(err).Warn("session load failed, sending unauthenticated request")
	} else if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// postJSON issues a POST with a JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(data), "application/json", out)
}

// delete issues a DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// fail logs a module failure for diagnostics and returns the error
// unmodified, preserving the propagation contract.
func (c *Client) fail(op string, err error) error {
	c.log.WithError(err).WithField("op", op).Error("api call failed")
	return err
}
