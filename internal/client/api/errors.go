package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request produced no response at all:
	// a network failure or the 12s request timeout.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend answered 401. The session is no
	// longer valid and must be torn down.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is a non-401 error answer from the backend.
type StatusError struct {
	// Status is the HTTP response status code.
	Status int
	// Message is the backend's error payload when one was present.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error %d", e.Status)
}

// Transient reports whether err is worth retrying: the request never got a
// response, or the backend answered with a server-side 5xx status.
// Unauthorized and other 4xx answers are never transient.
func Transient(err error) bool {
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.Status >= 500
}
