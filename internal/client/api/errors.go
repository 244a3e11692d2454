package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShareName is returned before any network call when a share
	// name is empty or malformed.
	ErrInvalidShareName = errors.New("invalid share name")

	// ErrEmptyContents is returned by SendFile when there is nothing to
	// upload. No network call is made in that case.
	ErrEmptyContents = errors.New("empty upload contents")
)

// ValidationError reports malformed input detected before any network call,
// such as a bad API key or a non-numeric token TTL.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// RemoteError reports an HTTP response with a non-success status. The
// transport succeeded; the server refused.
type RemoteError struct {
	Method     string
	URL        string
	Status     string
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// ProtocolError reports a successful HTTP response whose payload broke an
// expected invariant: wrong readystate, missing upload URL, missing field.
// Distinct from RemoteError because the transport itself succeeded.
type ProtocolError struct {
	Endpoint string
	Reason   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation on %s: %s", e.Endpoint, e.Reason)
}
