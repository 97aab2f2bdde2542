package interfaces

import (
	"errors"
	"fmt"
)

// BackendError is a failed maintenance-backend call: either a transport
// failure (StatusCode 0) or a non-2xx response carrying the server text.
// It is part of the backend contract so workflows can pick the right
// user-facing notice without knowing the transport.
type BackendError struct {
	StatusCode int
	ServerText string
	Err        error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend: %v", e.Err)
	}
	if e.ServerText != "" {
		return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.ServerText)
	}
	return fmt.Sprintf("backend: status %d", e.StatusCode)
}

func (e *BackendError) Unwrap() error { return e.Err }

// ServerText extracts the server-provided message from a backend error, or
// "" when the failure was transport-level.
func ServerText(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.ServerText
	}
	return ""
}

// IsTransportFailure reports whether err never reached the backend (network
// unreachable, request aborted), as opposed to a non-2xx response.
func IsTransportFailure(err error) bool {
	var be *BackendError
	if errors.As(err, &be) {
		return be.StatusCode == 0
	}
	return false
}
