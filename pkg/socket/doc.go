// Package socket is a client for the Socket security-analysis API.
//
// A Client is configured once (token, base URL, retry policy) and is safe for
// concurrent use. Endpoint methods return a Result plus an error; the two are
// deliberately distinct tiers:
//
//   - Recoverable outcomes (any 4xx response, or a 2xx body that fails to
//     decode) come back as a Result with Success=false and a bounded
//     diagnostic. The error is nil.
//   - Fatal outcomes (network-level failure, 5xx responses, or any call made
//     with Throws=true) come back as a non-nil typed error: *TransportError,
//     *APIError or *BlobError.
//
// Example:
//
//	client, err := socket.NewClient(socket.Config{Token: apiToken})
//	if err != nil { /* handle */ }
//	res, err := client.GetQuota(ctx, nil)
//	if err != nil { /* infra-level failure */ }
//	if !res.Success { /* expected business failure, inspect res.Error */ }
//
// Patch artifacts are fetched through a separate content-addressed path,
// Client.DownloadPatchBlob, which returns raw content or an error and never
// produces a Result.
package socket
