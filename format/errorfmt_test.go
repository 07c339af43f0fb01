package format

import (
	"errors"
	"strings"
	"testing"

	barion "github.com/kaliszkypeter/barion-mcp"
)

func TestFormatError_Authentication(t *testing.T) {
	err := &barion.TransportError{StatusCode: 401, Body: "unauthorized"}
	out := FormatError("get_payment_state", err)

	if !strings.Contains(out, "get_payment_state failed") {
		t.Errorf("missing operation name:\n%s", out)
	}
	if !strings.Contains(out, "Authentication") {
		t.Errorf("missing authentication cause:\n%s", out)
	}
	if !strings.Contains(out, "unauthorized") {
		t.Errorf("missing original error text:\n%s", out)
	}
}

func TestFormatError_NotFoundTransactionKeyword(t *testing.T) {
	err := &barion.TransportError{StatusCode: 404, Body: "The transaction does not exist"}
	out := FormatError("refund_payment", err)

	if !strings.Contains(out, "Check the transaction ID") {
		t.Errorf("missing transaction-specific bullet:\n%s", out)
	}
	if strings.Contains(out, "Check the payment ID") {
		t.Errorf("generic payment bullet should not appear:\n%s", out)
	}
}

func TestFormatError_ValidationCurrencyKeyword(t *testing.T) {
	err := &barion.TransportError{StatusCode: 400, Body: "Invalid Currency value"}
	out := FormatError("start_payment", err)

	if !strings.Contains(out, "HUF, EUR, USD, CZK") {
		t.Errorf("missing currency remediation:\n%s", out)
	}
}

func TestFormatError_ServerError(t *testing.T) {
	err := &barion.TransportError{StatusCode: 503, Body: "Service Unavailable"}
	out := FormatError("send_money", err)

	if !strings.Contains(out, "server error") {
		t.Errorf("missing server-error cause:\n%s", out)
	}
}

func TestFormatError_UpstreamInsufficientFunds(t *testing.T) {
	err := &barion.UpstreamError{Errors: []barion.ErrorItem{
		{ErrorCode: "InsufficientFunds", Title: "Not enough money"},
	}}
	out := FormatError("send_money", err)

	if !strings.Contains(out, "balance does not cover") {
		t.Errorf("missing insufficient-funds remediation:\n%s", out)
	}
	if !strings.Contains(out, "InsufficientFunds") {
		t.Errorf("missing original error text:\n%s", out)
	}
}

func TestFormatError_UpstreamUnknownCode(t *testing.T) {
	err := &barion.UpstreamError{Errors: []barion.ErrorItem{{ErrorCode: "SomethingNew"}}}
	out := FormatError("start_payment", err)

	if !strings.Contains(out, "domain error") {
		t.Errorf("missing generic domain cause:\n%s", out)
	}
}

func TestFormatError_Network(t *testing.T) {
	err := &barion.NetworkError{Err: errors.New("dial tcp: connection refused")}
	out := FormatError("get_wallet_balance", err)

	if !strings.Contains(out, "Could not reach") {
		t.Errorf("missing connectivity cause:\n%s", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("missing original error text:\n%s", out)
	}
}

func TestFormatError_Precondition(t *testing.T) {
	err := &barion.PreconditionError{
		Reason: "no wallet account with currency USD to send from",
		Err:    barion.ErrNoMatchingAccount,
	}
	out := FormatError("send_money", err)

	if !strings.Contains(out, "precondition") {
		t.Errorf("missing precondition cause:\n%s", out)
	}
	if !strings.Contains(out, "source account") {
		t.Errorf("missing auto-selection remediation:\n%s", out)
	}
}

func TestFormatError_GenericFallback(t *testing.T) {
	out := FormatError("start_payment", errors.New("something odd"))

	if !strings.Contains(out, "The operation failed") {
		t.Errorf("missing generic cause:\n%s", out)
	}
	if !strings.Contains(out, "something odd") {
		t.Errorf("missing original error text:\n%s", out)
	}
}
