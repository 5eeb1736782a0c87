package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the transport itself failed (connection refused,
	// network unreachable) before any HTTP status was produced.
	ErrUnavailable = errors.New("cannot connect to the server")

	// ErrUnauthorized is unwrapped from APIError for 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-success HTTP response. Message carries the text extracted
// from the response body ("message" or "error" field of a JSON body, the raw
// body otherwise) or a generic status-coded fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}
