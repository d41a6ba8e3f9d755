package adapter

import "errors"

var (
	// ErrNotConfigured is returned when a remote call is attempted without
	// a base URL or service key. Callers should treat this as "sync is a
	// no-op", not as a user-visible failure.
	ErrNotConfigured = errors.New("remote store not configured")

	// ErrUnauthorized maps HTTP 401/403: the service key was rejected.
	ErrUnauthorized = errors.New("remote store unauthorized")

	// ErrBadRequest maps HTTP 400, typically a malformed filter or body.
	ErrBadRequest = errors.New("remote store bad request")

	// ErrRemoteUnavailable maps 5xx and transport-level failures.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)
