package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport marks requests that never produced an HTTP response.
	ErrTransport = errors.New("backend unreachable")
	// ErrDecode marks 2xx responses whose body is not the expected JSON.
	ErrDecode   = errors.New("malformed backend response")
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status     int
	StatusText string
	// Detail is the backend's error detail flattened to text, possibly empty.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d %s", e.Status, e.StatusText)
}

// Reason is what a user should read: the detail when the backend sent
// one, else "<status> <status text>.".
func (e *APIError) Reason() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%d %s.", e.Status, e.text())
}

// ShortReason is the detail, or the bare status text without a detail.
func (e *APIError) ShortReason() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.text()
}

func (e *APIError) text() string {
	if e.StatusText != "" {
		return e.StatusText
	}
	return http.StatusText(e.Status)
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
