package socket

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL points at the production Socket API host.
const DefaultBaseURL = "https://api.socket.dev/v0"

const defaultRetryDelay = 200 * time.Millisecond

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

// Config describes a Client. Zero values get sensible defaults; only Token
// is required.
type Config struct {
	// Token is the API token, sent as HTTP basic auth with an empty
	// password segment on every request.
	Token string

	// BaseURL overrides the production API host, mainly for testing.
	BaseURL string

	// Retries is the number of extra attempts made when a request fails at
	// the network level. HTTP responses, including error responses, are
	// never retried.
	Retries int

	// RetryDelay is the base backoff between attempts; it doubles per
	// attempt. Defaults to 200ms.
	RetryDelay time.Duration

	// HTTPClient lets callers supply their own transport. Defaults to a
	// plain http.Client without a timeout: the retry policy is the only
	// time bound this client imposes, hard timeouts belong to the caller.
	HTTPClient *http.Client

	// Debug logs each request and response line, with bodies truncated.
	Debug bool
}

// Client talks to the Socket API. Its configuration is read-only after
// NewClient returns, so concurrent calls on one instance are safe and do not
// serialize against each other.
type Client struct {
	baseURL    *url.URL
	authHeader string
	retries    int
	retryDelay time.Duration
	httpClient *http.Client
	userAgent  string
	debug      bool
}

// NewClient validates cfg and returns a ready Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("socket: api token is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("socket: invalid base url %q: %w", base, err)
	}
	if cfg.Retries < 0 {
		return nil, fmt.Errorf("socket: retries must be non-negative, got %d", cfg.Retries)
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    parsed,
		authHeader: basicAuth(cfg.Token),
		retries:    cfg.Retries,
		retryDelay: delay,
		httpClient: httpClient,
		userAgent:  "socket-sdk-go/" + Version,
		debug:      cfg.Debug,
	}, nil
}

// basicAuth builds the Authorization header value: the token is the username
// and the password segment is empty. There is no bearer/OAuth mode.
func basicAuth(token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(token+":"))
}

// endpointURL joins path and an optional query onto the configured base URL.
func (c *Client) endpointURL(endpoint, rawQuery string) string {
	u := strings.TrimSuffix(c.baseURL.String(), "/") + "/" + strings.TrimPrefix(endpoint, "/")
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

func (c *Client) debugf(format string, args ...any) {
	if c.debug {
		log.Printf("[socket] "+format, args...)
	}
}

func truncateForLog(data []byte) string {
	if len(data) == 0 {
		return "<empty>"
	}
	const limit = 2048
	if len(data) <= limit {
		return string(data)
	}
	return fmt.Sprintf("%s...(truncated %d bytes)", string(data[:limit]), len(data)-limit)
}
