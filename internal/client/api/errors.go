package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport-level failures: the backend could not
	// be reached or did not answer.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the credential. Receiving it
	// from any call implies the stored session has already been invalidated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested record does not exist (or was
	// soft-deleted).
	ErrNotFound = errors.New("not found")
)

// BackendError is a non-401/404 rejection (4xx/5xx) carrying the backend's
// message when one was provided.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend rejected request (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend rejected request (status %d)", e.Status)
}
