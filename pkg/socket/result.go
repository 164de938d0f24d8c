package socket

// Result is the outcome of a dispatched API call. Exactly one variant is
// populated: Success=true carries Data, Success=false carries Error and
// optionally Cause. Status always holds the HTTP status code the server
// actually returned, never a derived value.
//
// Results are plain values; callers own them and nothing in the client
// mutates a Result after it is returned.
type Result[T any] struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

func success[T any](status int, data T) Result[T] {
	return Result[T]{Success: true, Status: status, Data: data}
}

func failure[T any](status int, summary, cause string) Result[T] {
	return Result[T]{Success: false, Status: status, Error: summary, Cause: cause}
}
