// Package api implements the HTTP client for the ledgerline backend:
// typed endpoint methods on top of a request pipeline that injects the
// auth and tenant headers, normalizes paths and classifies failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ledgerline/ledgerline/internal/common"
	"github.com/ledgerline/ledgerline/internal/logging"
)

// SessionStore is the slice of the persistent store the pipeline needs:
// credentials for the request side, removal for 401 recovery.
type SessionStore interface {
	CredentialSource
	RemoveAuthToken()
	RemoveTenantID()
}

// Notifier is the toast surface the pipeline reports through.
type Notifier interface {
	Error(text string)
}

// Client calls the backend REST API. Every request passes through the
// transformer chain (see NewTransport); every failed response passes
// through the error normalizer, which surfaces a toast and returns an
// *APIError — it never swallows failures.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	store   SessionStore
	toast   Notifier
	log     logging.Logger

	// onSessionExpired is invoked after a 401 clears the stored
	// credentials; the CLI uses it to navigate back to login.
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// wrapped with the transformer chain.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New constructs a Client for the API at baseURL.
func New(baseURL string, store SessionStore, toast Notifier, log logging.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		store:   store,
		toast:   toast,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Transport = NewTransport(c.http.Transport, store, u.Path)
	return c, nil
}

// OnSessionExpired registers the hook invoked when a 401 response ends
// the session.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// do issues one API request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded JSON response. extra headers are attached
// before the transformer chain runs.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, body any, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// client-side/network failure: no status to classify, surface
		// the underlying message as-is
		c.log.Error(ctx, "request failed", "method", method, "path", path, "err", err)
		c.toast.Error(err.Error())
		return &APIError{Message: err.Error(), Err: fmt.Errorf("%w: %w", common.ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.toast.Error(err.Error())
		return &APIError{Message: err.Error(), Err: fmt.Errorf("%w: %w", common.ErrUnavailable, err)}
	}

	if resp.StatusCode >= 400 {
		return c.normalizeError(ctx, method, path, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// normalizeError classifies a failed response, surfaces the user-facing
// message as an error toast and returns the classified error. 401 ends
// the session: stored credentials are cleared before the session-expired
// hook fires.
func (c *Client) normalizeError(ctx context.Context, method, path string, status int, body []byte) error {
	var server struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &server)

	var msg string
	var sentinel error

	switch status {
	case http.StatusUnauthorized:
		msg = "Session expired. Please login again."
		sentinel = common.ErrUnauthorized
		c.store.RemoveAuthToken()
		c.store.RemoveTenantID()
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
	case http.StatusForbidden:
		msg = "Access denied. You do not have permission."
		sentinel = common.ErrUnauthorized
	case http.StatusNotFound:
		msg = "Resource not found."
		sentinel = common.ErrNotFound
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		msg = "Server error. Please try again later."
		sentinel = common.ErrUnavailable
	default:
		if server.Message != "" {
			msg = server.Message
		} else {
			msg = "An unexpected error occurred"
		}
	}

	c.log.Error(ctx, "api error", "method", method, "path", path, "status", status, "server_message", server.Message)
	c.toast.Error(msg)

	return &APIError{Status: status, Message: msg, Err: sentinel}
}
