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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/conduit/internal/logging"
)

const (
	apiPrefix       = "/api"
	defaultAgent    = "conduit-cli/1.0"
	requestIDHeader = "X-Request-ID"
)

// CredentialSource supplies the current bearer token; "" means none.
type CredentialSource interface {
	Credential() string
}

// StaticToken is a CredentialSource that always returns the same token.
type StaticToken string

func (t StaticToken) Credential() string { return string(t) }

// CredentialFunc adapts a function to CredentialSource.
type CredentialFunc func() string

func (f CredentialFunc) Credential() string { return f() }

// Options configures a Client. Zero values select sensible defaults; a zero
// Timeout means requests are bounded only by their context.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	Credentials CredentialSource
	Logger      logging.Logger
	Transport   http.RoundTripper
}

type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	logger  logging.Logger
}

func New(opts Options) *Client {
	agent := opts.UserAgent
	if agent == "" {
		agent = defaultAgent
	}
	next := opts.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	creds := opts.Credentials
	if creds == nil {
		creds = StaticToken("")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/") + apiPrefix,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: &transport{next: next, userAgent: agent},
		},
		creds:  creds,
		logger: logger.With("component", "api"),
	}
}

// WithToken returns a copy of c that authenticates with token regardless of
// the configured CredentialSource.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.creds = StaticToken(token)
	return &cp
}

// transport stamps every outgoing request with the client's User-Agent.
type transport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(r)
}

// Request performs method on path (relative to <base>/api). params become the
// query string; body, when non-nil, is sent as JSON; out, when non-nil,
// receives the decoded response. When authenticated is set and a credential
// exists the Authorization header is attached.
func (c *Client) Request(ctx context.Context, method, path string, params url.Values, body any, authenticated bool, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		if token := c.creds.Credential(); token != "" {
			req.Header.Set("Authorization", "Token "+token)
		}
	}

	log := c.logger.With("request_id", requestID, "method", method, "path", path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &Error{Err: ErrUnavailable, Cause: err}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request completed", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(ctx, log, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &Error{Err: ErrUnexpected, Status: resp.StatusCode, Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) mapError(ctx context.Context, log logging.Logger, resp *http.Response) error {
	apiErr := &Error{Err: kindForStatus(resp.StatusCode), Status: resp.StatusCode}

	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && len(eb.Errors) > 0 {
		apiErr.Fields = eb.Errors
	}

	log.Debug(ctx, "request rejected", "status", resp.StatusCode, "kind", apiErr.Err)
	return apiErr
}

func segment(s string) string {
	return url.PathEscape(s)
}
