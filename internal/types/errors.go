package types

import "fmt"

// ------------------------------
// Shared Errors
// ------------------------------

// APIError is a business failure reported by the Lava API inside a
// structurally successful HTTP response (status field set to "error").
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lava api error %s: %s", e.Code, e.Message)
}

// TransportError wraps a failure of the HTTP exchange itself: connection
// errors, timeouts, body read failures, or a response body that is not
// valid JSON for the expected shape. Never produced for a well-formed
// error envelope — that is an *APIError.
type TransportError struct {
	Op  string // endpoint path, e.g. "/withdraw/create"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lava %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error { return e.Err }
