package barion

import (
	"errors"
	"strings"
	"testing"
)

func TestUpstreamError_Message(t *testing.T) {
	err := &UpstreamError{Errors: []ErrorItem{
		{ErrorCode: "InvalidPaymentStatus", Title: "Invalid status", Description: "Payment already completed"},
		{ErrorCode: "ModelValidation", Title: "Bad model"},
	}}

	msg := err.Error()
	for _, want := range []string{
		"InvalidPaymentStatus: Invalid status (Payment already completed)",
		"ModelValidation: Bad model",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestUpstreamError_HasCode(t *testing.T) {
	err := &UpstreamError{Errors: []ErrorItem{{ErrorCode: "InsufficientFunds"}}}

	if !err.HasCode("InsufficientFunds") {
		t.Error("expected HasCode(InsufficientFunds) to be true")
	}
	if !err.HasCode("insufficientfunds") {
		t.Error("expected HasCode to be case-insensitive")
	}
	if err.HasCode("NotFound") {
		t.Error("expected HasCode(NotFound) to be false")
	}
}

func TestTransportError_TruncatesLongBody(t *testing.T) {
	err := &TransportError{StatusCode: 500, Body: strings.Repeat("x", 2000)}

	if len(err.Error()) > 600 {
		t.Errorf("error message too long: %d chars", len(err.Error()))
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("message %q missing status", err.Error())
	}
}

func TestPreconditionError_Unwrap(t *testing.T) {
	err := &PreconditionError{Reason: "no wallet account with currency USD to send from", Err: ErrNoMatchingAccount}

	if !errors.Is(err, ErrNoMatchingAccount) {
		t.Error("expected errors.Is to find ErrNoMatchingAccount")
	}
	if !strings.Contains(err.Error(), "no wallet account with currency USD") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}
