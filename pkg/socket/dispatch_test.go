package socket

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{Token: "test-token", BaseURL: baseURL, RetryDelay: time.Millisecond})
	require.NoError(t, err)
	return c
}

func TestGetQuota_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quota", r.URL.Path)
		w.Write([]byte(`{"quota": 1000000000}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).GetQuota(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, int64(1000000000), res.Data.Quota)
	assert.Empty(t, res.Error)
}

func TestDispatch_SendsBasicAuthAndRequestID(t *testing.T) {
	var auth, requestID, userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetQuota(context.Background(), nil)
	require.NoError(t, err)

	// Basic auth with the token as the user and an empty password segment.
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-token:"))
	assert.Equal(t, want, auth)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, "socket-sdk-go/"+Version, userAgent)
}

func TestDispatch_FourOhOneIsFailureResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API token"}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).GetQuota(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 401, res.Status)
	assert.Contains(t, res.Error, "Socket API Request failed")
	assert.Contains(t, res.Cause, "Invalid API token")
}

func TestDispatch_InvalidJSONExactly100Chars(t *testing.T) {
	body := strings.Repeat("x", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).GetQuota(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "Server returned invalid JSON", res.Error)
	assert.Equal(t, body, res.Cause)
	assert.NotContains(t, res.Cause, "...")
}

func TestDispatch_InvalidJSON101CharsTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("y", 101)))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).GetQuota(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Server returned invalid JSON", res.Error)
	assert.Contains(t, res.Cause, "...")
	assert.Equal(t, strings.Repeat("y", 100)+"...", res.Cause)
}

func TestDispatch_FiveHundredEscalates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetQuota(context.Background(), nil)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "Socket API server error (500)", apiErr.Error())
}

func TestDispatch_ThrowsEscalatesRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such org"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetQuota(context.Background(), &RequestOptions{Throws: true})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "Socket API Request failed (404)")
	assert.Contains(t, apiErr.Cause, "no such org")
}

func TestDispatch_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	zero := 0
	_, err := newTestClient(t, srv.URL).GetQuota(context.Background(), &RequestOptions{Retries: &zero})
	require.Error(t, err)
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Contains(t, err.Error(), "Unexpected Socket API error")
}

// flakyTransport fails the first failures attempts at the network level and
// then delegates to a fixed response.
type flakyTransport struct {
	failures int
	attempts int
	ids      []string
	status   int
	body     string
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.attempts++
	f.ids = append(f.ids, req.Header.Get("X-Request-ID"))
	if f.attempts <= f.failures {
		return nil, errors.New("connection reset by peer")
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestDispatch_RetriesNetworkFailures(t *testing.T) {
	ft := &flakyTransport{failures: 2, status: 200, body: `{"quota": 7}`}
	c, err := NewClient(Config{
		Token:      "test-token",
		Retries:    2,
		RetryDelay: time.Millisecond,
		HTTPClient: &http.Client{Transport: ft},
	})
	require.NoError(t, err)

	res, err := c.GetQuota(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int64(7), res.Data.Quota)
	assert.Equal(t, 3, ft.attempts)

	// One logical dispatch keeps one request ID across attempts.
	for _, id := range ft.ids {
		assert.Equal(t, ft.ids[0], id)
	}
}

func TestDispatch_ExhaustedRetriesPropagate(t *testing.T) {
	ft := &flakyTransport{failures: 10, status: 200, body: `{}`}
	c, err := NewClient(Config{
		Token:      "test-token",
		Retries:    2,
		RetryDelay: time.Millisecond,
		HTTPClient: &http.Client{Transport: ft},
	})
	require.NoError(t, err)

	_, err = c.GetQuota(context.Background(), nil)
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, 3, ft.attempts)
}

func TestDispatch_ReceivedResponseIsNeverRetried(t *testing.T) {
	ft := &flakyTransport{failures: 0, status: 503, body: "down"}
	c, err := NewClient(Config{
		Token:      "test-token",
		Retries:    5,
		RetryDelay: time.Millisecond,
		HTTPClient: &http.Client{Transport: ft},
	})
	require.NoError(t, err)

	_, err = c.GetQuota(context.Background(), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Socket API server error (503)", apiErr.Error())
	assert.Equal(t, 1, ft.attempts)
}

func TestDispatch_TextResponseType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text payload"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := dispatch[string](context.Background(), c, http.MethodGet, "/raw", nil, &RequestOptions{ResponseType: ResponseText})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "plain text payload", res.Data)
}

func TestDispatch_Idempotence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("denied"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	first, err := c.GetQuota(context.Background(), nil)
	require.NoError(t, err)
	second, err := c.GetQuota(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
