package socket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ResponseType selects how a 2xx body is decoded.
const (
	ResponseJSON = "json"
	ResponseText = "text"
)

// RequestOptions are per-call overrides layered on the client defaults. A nil
// *RequestOptions means all defaults.
type RequestOptions struct {
	// Retries overrides the client retry count for this call.
	Retries *int

	// ResponseType is ResponseJSON (default) or ResponseText.
	ResponseType string

	// Throws escalates recoverable failures to an *APIError instead of a
	// failure Result.
	Throws bool

	// Query is serialized through the query normalizer.
	Query []Param
}

func (o *RequestOptions) retries(fallback int) int {
	if o != nil && o.Retries != nil {
		return *o.Retries
	}
	return fallback
}

func (o *RequestOptions) responseType() string {
	if o != nil && o.ResponseType != "" {
		return o.ResponseType
	}
	return ResponseJSON
}

func (o *RequestOptions) throws() bool { return o != nil && o.Throws }

func (o *RequestOptions) query() []Param {
	if o == nil {
		return nil
	}
	return o.Query
}

type rawResponse struct {
	status int
	body   []byte
}

// send executes one logical API call: it issues the HTTP request, retrying
// network-level failures per the retry policy, and returns the first HTTP
// response actually received. A received response is definitive and is never
// retried, whatever its status. Each call owns its own attempt counter;
// nothing is shared across concurrent dispatches.
func (c *Client) send(ctx context.Context, method, endpoint string, body any, opts *RequestOptions) (*rawResponse, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("socket: encode request body: %w", err)
		}
	}

	fullURL := c.endpointURL(endpoint, encodeParams(opts.query()))
	requestID := uuid.NewString()
	retries := opts.retries(c.retries)

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, fmt.Errorf("socket: build request: %w", err)
		}
		req.Header.Set("Authorization", c.authHeader)
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-ID", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.debugf("request %s %s id=%s attempt=%d body=%s", method, fullURL, requestID, attempt, truncateForLog(payload))
		resp, err = c.httpClient.Do(req)
		if err == nil {
			break
		}
		if attempt >= retries {
			return nil, &TransportError{Cause: err}
		}
		time.Sleep(c.retryDelay << attempt)
	}
	defer resp.Body.Close()

	// Read the body fully even for error responses so the connection can
	// be reused.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	c.debugf("response %s %s id=%s status=%d body=%s", method, endpoint, requestID, resp.StatusCode, truncateForLog(raw))
	return &rawResponse{status: resp.StatusCode, body: raw}, nil
}

// dispatch classifies the outcome of one API call into the two-tier model: a
// Result for recoverable outcomes, a typed error for the fatal tier.
func dispatch[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts *RequestOptions) (Result[T], error) {
	resp, err := c.send(ctx, method, endpoint, body, opts)
	if err != nil {
		return Result[T]{}, err
	}

	if resp.status >= 500 {
		return Result[T]{}, serverError(resp.status)
	}
	if resp.status >= 200 && resp.status < 300 {
		data, decodeErr := decodeBody[T](resp.body, opts.responseType())
		if decodeErr == nil {
			return success(resp.status, data), nil
		}
		// The server did respond, just with a malformed payload: this
		// is the recoverable tier, not a server fault. The formatter
		// is applied to the raw body with no status context.
		return fail[T](resp.status, "Server returned invalid JSON", formatDiagnostic("", string(resp.body)), opts)
	}
	summary := fmt.Sprintf("Socket API Request failed (%d)", resp.status)
	cause := formatDiagnostic(http.StatusText(resp.status), string(resp.body))
	return fail[T](resp.status, summary, cause, opts)
}

// fail builds a failure Result, or escalates it when the call was made with
// Throws=true.
func fail[T any](status int, summary, cause string, opts *RequestOptions) (Result[T], error) {
	if opts.throws() {
		return Result[T]{}, &APIError{Status: status, Message: summary, Cause: cause}
	}
	return failure[T](status, summary, cause), nil
}

func decodeBody[T any](body []byte, responseType string) (T, error) {
	var data T
	if responseType == ResponseText {
		text, ok := any(string(body)).(T)
		if !ok {
			return data, fmt.Errorf("socket: text response requires a string result type")
		}
		return text, nil
	}
	err := json.Unmarshal(body, &data)
	return data, err
}

// Endpoint wrappers funnel through these helpers; Go methods cannot be
// generic, so they are package-level functions.

func getJSON[T any](ctx context.Context, c *Client, endpoint string, opts *RequestOptions) (Result[T], error) {
	return dispatch[T](ctx, c, http.MethodGet, endpoint, nil, opts)
}

func postJSON[T any](ctx context.Context, c *Client, endpoint string, body any, opts *RequestOptions) (Result[T], error) {
	return dispatch[T](ctx, c, http.MethodPost, endpoint, body, opts)
}

func putJSON[T any](ctx context.Context, c *Client, endpoint string, body any, opts *RequestOptions) (Result[T], error) {
	return dispatch[T](ctx, c, http.MethodPut, endpoint, body, opts)
}

func deleteJSON[T any](ctx context.Context, c *Client, endpoint string, opts *RequestOptions) (Result[T], error) {
	return dispatch[T](ctx, c, http.MethodDelete, endpoint, nil, opts)
}
