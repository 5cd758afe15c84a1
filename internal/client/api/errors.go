package api

import (
	"errors"
	"fmt"
)

// APIError is the normalized failure produced by the response pipeline.
// Status is the HTTP status code (0 for transport failures), Message is
// the user-facing classification already surfaced as a toast, and Err is
// the matching sentinel from internal/common, so callers can use
// errors.Is against common.ErrUnauthorized, common.ErrNotFound and
// common.ErrUnavailable.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
