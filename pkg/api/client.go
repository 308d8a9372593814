// Package api is the rate-governed access layer for the Habitica v3 API.
// Every request funnels through one client, which paces dispatches to stay
// inside the published quota and normalizes responses into a payload or a
// typed error. Nothing here retries: the mutation endpoints are not
// idempotent, so retry policy belongs to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harrisonrobin/habitick/pkg/auth"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://habitica.com/api/v3/"

const defaultHTTPTimeout = 30 * time.Second

// Client performs paced, authenticated exchanges against the API.
type Client struct {
	base  *url.URL
	http  *http.Client
	creds auth.Credentials
	pace  *pacer
	log   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger; the default is a nop.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithInterval overrides the minimum gap between dispatches.
func WithInterval(d time.Duration) Option {
	return func(c *Client) { c.pace = newPacer(d) }
}

// New builds a client for the given API root. baseURL may be empty to use
// the production root.
func New(baseURL string, creds auth.Credentials, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	c := &Client{
		base:  base,
		http:  &http.Client{Timeout: defaultHTTPTimeout},
		creds: creds,
		pace:  newPacer(DefaultInterval),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do performs one paced request/response cycle. The returned payload is the
// unwrapped data field for enveloped responses, the raw body for endpoints
// that skip the envelope, and nil for empty responses.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	if err := c.pace.wait(ctx); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}

	c.log.Debug("dispatching request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}

	return classifyResponse(resp.StatusCode, data)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, query)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, query url.Values) (*http.Request, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	u := c.base.ResolveReference(ref)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.creds.Headers() {
		req.Header.Set(k, v)
	}
	return req, nil
}

// envelope is the response wrapper most endpoints use.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	ErrType string          `json:"error"`
	Message string          `json:"message"`
}

func classifyTransportFailure(err error) *Error {
	kind := KindNetwork
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		kind = KindTimeout
	} else if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, cause: err}
}

func classifyResponse(status int, data []byte) (json.RawMessage, error) {
	if status == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var env envelope
	envErr := json.Unmarshal(data, &env)

	if status >= 200 && status < 300 {
		if envErr == nil && env.Success != nil {
			if *env.Success {
				return env.Data, nil
			}
			return nil, &Error{
				Kind:    KindAPI,
				ErrType: env.ErrType,
				Message: env.Message,
				Status:  status,
				Raw:     data,
			}
		}
		// Some endpoints skip the envelope; pass structured bodies through.
		if json.Valid(data) {
			return json.RawMessage(data), nil
		}
		return nil, &Error{
			Kind:    KindMalformed,
			Message: "response body is not valid JSON",
			Status:  status,
			Raw:     data,
		}
	}

	if envErr == nil && (env.ErrType != "" || env.Message != "") {
		return nil, &Error{
			Kind:    KindAPI,
			ErrType: env.ErrType,
			Message: env.Message,
			Status:  status,
			Raw:     data,
		}
	}
	return nil, &Error{
		Kind:    KindAPI,
		Message: fmt.Sprintf("HTTP %d", status),
		Status:  status,
		Raw:     data,
	}
}
