package translator

import (
	"errors"
	"fmt"
)

// ErrResponseFormat reports a backend response that is not valid JSON or
// lacks the expected translation entry.
var ErrResponseFormat = errors.New("unexpected translation response format")

// TransportError wraps a network-level failure reaching the backend.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError reports a non-success HTTP status from the backend, carrying
// the status code and the raw response body.
type BackendError struct {
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}
