package socket

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/socketsecurity/socket-sdk-go/internal/validate"
)

// Digest encodings accepted in a hash reference.
const (
	EncodingBase64 = "base64"
	EncodingHex    = "hex"
)

// HashReference identifies a content-addressed patch artifact. Two input
// forms are accepted: SSRI style ("sha256-<base64>") and a bare hexadecimal
// digest. Whichever encoding the caller supplied is preserved and forwarded
// verbatim; the client never re-encodes between forms.
type HashReference struct {
	Algorithm string
	Encoding  string
	Digest    string

	raw string
}

// String returns the reference exactly as the caller supplied it.
func (h HashReference) String() string { return h.raw }

// ParseHashReference validates and decomposes a hash reference string.
func ParseHashReference(s string) (HashReference, error) {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		algorithm, digest := s[:i], s[i+1:]
		if algorithm == "" || digest == "" {
			return HashReference{}, fmt.Errorf("socket: malformed SSRI hash reference %q", s)
		}
		if !validate.IsBase64Std(digest) {
			return HashReference{}, fmt.Errorf("socket: SSRI digest in %q is not base64", s)
		}
		return HashReference{Algorithm: algorithm, Encoding: EncodingBase64, Digest: digest, raw: s}, nil
	}
	if s == "" {
		return HashReference{}, fmt.Errorf("socket: empty hash reference")
	}
	if !validate.IsHex(s) {
		return HashReference{}, fmt.Errorf("socket: hash reference %q is neither SSRI nor hex", s)
	}
	return HashReference{Encoding: EncodingHex, Digest: s, raw: s}, nil
}

// DownloadPatchBlob fetches a patch artifact by hash from the blob store
// path. This path is independent of the Result-typed API surface: artifact
// retrieval is all-or-nothing, so it returns the full content or a
// *BlobError and has no partial-failure mode.
//
// Contents from zero bytes up to hundreds of KB are returned exactly as
// served, decoded as UTF-8 text without truncation.
func (c *Client) DownloadPatchBlob(ctx context.Context, hash string) (string, error) {
	ref, err := ParseHashReference(hash)
	if err != nil {
		return "", &BlobError{Message: "Error downloading blob", Cause: err}
	}

	fullURL := c.endpointURL("/blob/"+url.PathEscape(ref.String()), "")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", &BlobError{Message: "Error downloading blob", Cause: err}
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("User-Agent", c.userAgent)

	c.debugf("blob request %s", fullURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &BlobError{Message: "Error downloading blob", Cause: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			// The stream died after headers: discard the partial
			// bytes, surface the cause.
			return "", &BlobError{Message: "Error downloading blob", Cause: err}
		}
		return string(body), nil
	case http.StatusNotFound:
		return "", &BlobError{Message: fmt.Sprintf("Blob not found: %s", hash)}
	default:
		return "", &BlobError{Message: fmt.Sprintf("Failed to download blob: %d", resp.StatusCode)}
	}
}
