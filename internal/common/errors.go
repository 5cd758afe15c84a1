package common

import "errors"

// Sentinel errors shared between the API layer and the CLI. Callers should
// use errors.Is to match these values.
var (
	// ErrNotFound is returned when a requested entity does not exist,
	// either locally or on the server.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized signals a rejected or expired session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable signals that the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNoTenant signals that an operation requiring a tenant context was
	// attempted with no tenant selected.
	ErrNoTenant = errors.New("no tenant selected")
)
