package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized maps HTTP 401 from any authenticated endpoint. The
	// caller must clear the local session and send the user back to login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrQuotaExceeded maps the daily question allowance being exhausted.
	ErrQuotaExceeded = errors.New("question quota exceeded")

	// ErrUnavailable covers network-level failures before any HTTP status
	// was received.
	ErrUnavailable = errors.New("server unavailable")
)

// quotaExceededMessage is the exact server message that distinguishes the
// quota case from other 422 responses. The server exposes no structured
// error code, so a string match is all there is.
const quotaExceededMessage = "Questions limit exceeded. Please try again tomorrow."

// StatusError is a generic non-2xx response carrying the server's message,
// if it sent one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.Code)
}
