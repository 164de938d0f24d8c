package socket

import "fmt"

// TransportError reports a network-level failure: the request never produced
// an HTTP response (connection refused, DNS failure, stream reset). These are
// never converted into a Result.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Unexpected Socket API error: %v", e.Cause)
	}
	return "Unexpected Socket API error"
}

func (e *TransportError) Unwrap() error { return e.Cause }

// APIError reports a definitive HTTP response that is escalated instead of
// returned as a Result: any status >= 500, or any recoverable failure on a
// call made with Throws=true.
type APIError struct {
	Status  int
	Message string
	Cause   string
}

func (e *APIError) Error() string { return e.Message }

func serverError(status int) *APIError {
	return &APIError{
		Status:  status,
		Message: fmt.Sprintf("Socket API server error (%d)", status),
	}
}

// BlobError reports a failed patch artifact download. Message text
// distinguishes a missing blob from other HTTP failures; network failures
// before and after response headers share the same message and differ only
// in the wrapped cause.
type BlobError struct {
	Message string
	Cause   error
}

func (e *BlobError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BlobError) Unwrap() error { return e.Cause }
