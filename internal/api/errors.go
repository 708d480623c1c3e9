package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed backend call so the presentation layer can
// pick feedback in one place instead of per call site.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"    // transport failure, no HTTP response
	KindValidation ErrorKind = "validation" // 400/422, bad input
	KindAuth       ErrorKind = "auth"       // 401/403, bad credentials or no access
	KindNotFound   ErrorKind = "not_found"  // 404
	KindServer     ErrorKind = "server"     // 5xx and everything else
)

// Error is the typed result of a failed backend call.
type Error struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 for transport failures
	Op      string // e.g. "create booking"
	Message string // backend-provided message when available
	err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Op, e.Message, e.Kind)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.err, e.Kind)
	}
	return fmt.Sprintf("%s: status %d (%s)", e.Op, e.Status, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf extracts the kind from any error chain; non-API errors count as
// network failures since they never reached the backend.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}
