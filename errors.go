package barion

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the Barion adapter.
var (
	// ErrMissingCredentials indicates neither a POS key nor a wallet API key
	// was supplied at startup.
	ErrMissingCredentials = errors.New("barion: no credentials supplied (POS key or wallet API key required)")

	// ErrNoMatchingAccount indicates no wallet account matched the requested
	// currency during transfer source auto-selection.
	ErrNoMatchingAccount = errors.New("barion: no wallet account matches the requested currency")

	// ErrInvalidEnvironment indicates an unknown environment name.
	ErrInvalidEnvironment = errors.New("barion: invalid environment (expected \"test\" or \"prod\")")
)

// TransportError is returned when the upstream API answers with a non-2xx
// HTTP status. Body carries the raw response text.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	body := e.Body
	if len(body) > 500 {
		body = body[:500]
	}
	return fmt.Sprintf("barion: upstream returned HTTP %d: %s", e.StatusCode, body)
}

// UpstreamError is returned when the upstream API answers 2xx but reports a
// populated Errors array in the body.
type UpstreamError struct {
	Errors []ErrorItem
}

func (e *UpstreamError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		s := item.ErrorCode
		if item.Title != "" {
			s += ": " + item.Title
		}
		if item.Description != "" {
			s += " (" + item.Description + ")"
		}
		parts = append(parts, s)
	}
	return "barion: upstream error: " + strings.Join(parts, "; ")
}

// HasCode reports whether any upstream error item carries the given code.
func (e *UpstreamError) HasCode(code string) bool {
	for _, item := range e.Errors {
		if strings.EqualFold(item.ErrorCode, code) {
			return true
		}
	}
	return false
}

// NetworkError is returned when the HTTP request itself failed before any
// response was received (connection refused, DNS failure, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "barion: network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PreconditionError is returned when a local precondition failed before any
// upstream call was issued.
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("barion: %s: %v", e.Reason, e.Err)
	}
	return "barion: " + e.Reason
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}
