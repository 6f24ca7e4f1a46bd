// Package starstore implements every repository port over the Star Store
// backend REST API. The backend owns all persistence and business rules;
// this package only shapes requests, attaches the bearer token and
// normalizes error bodies.
package starstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"staradmin/config"

	"github.com/pkg/errors"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// Client is the shared HTTP client for the upstream backend. One
// request per call, no retries: every failure is terminal for that one
// admin action and surfaces as a toast upstream of here.
type Client struct {
	baseURL   string
	imageBase string
	http      *http.Client
	tokens    TokenSource
}

// NewClient builds the upstream client from config. The base URL has
// already been resolved through the env -> production -> localhost chain.
func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL:   cfg.Upstream.BaseURL,
		imageBase: strings.TrimRight(cfg.Images.BaseURL, "/"),
		http:      &http.Client{Timeout: cfg.Upstream.Timeout},
		tokens:    tokens,
	}
}

// BaseURL returns the resolved upstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type requestOptions struct {
	noAuth bool
}

// RequestOption tweaks a single request.
type RequestOption func(*requestOptions)

// WithoutAuth skips the Authorization header, used for the login call.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.noAuth = true }
}

// do performs one JSON request against the backend. A nil body sends no
// payload. The response body is returned raw; nil for 204/empty bodies.
func (c *Client) do(ctx context.Context, method, path string, body any, opts ...RequestOption) (json.RawMessage, error) {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !options.noAuth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.WithStack(normalizeError(resp.StatusCode, raw))
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	return json.RawMessage(raw), nil
}

// normalizeError extracts the backend's {error} message, falling back to
// the HTTP status line.
func normalizeError(status int, body []byte) error {
	fallback := fmt.Sprintf("%d %s", status, http.StatusText(status))

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return errors.New(fallback)
	}

	var message string
	if err := json.Unmarshal(envelope.Error, &message); err == nil && strings.TrimSpace(message) != "" {
		return errors.New(message)
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil && strings.TrimSpace(nested.Message) != "" {
		return errors.New(nested.Message)
	}

	return errors.New(fallback)
}

func pathID(resource, id string) string {
	return resource + "/" + escapePathSegment(id)
}

// escapePathSegment keeps record ids safe inside a URL path.
func escapePathSegment(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.', r == '~':
			b.WriteRune(r)
		default:
			for _, c := range []byte(string(r)) {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		}
	}

	return b.String()
}
