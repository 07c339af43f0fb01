package format

import (
	"errors"
	"fmt"
	"strings"

	barion "github.com/kaliszkypeter/barion-mcp"
)

// FormatError classifies a failed operation's error and renders a templated
// remediation message. It is purely presentational: classification switches
// on the tagged error variants of the barion package (not on message text),
// with keyword sub-classification only where the upstream offers no
// structured field. First match wins.
func FormatError(operation string, err error) string {
	var transportErr *barion.TransportError
	var upstreamErr *barion.UpstreamError
	var networkErr *barion.NetworkError
	var precondErr *barion.PreconditionError

	switch {
	case errors.As(err, &transportErr):
		return formatTransportError(operation, transportErr, err)
	case errors.As(err, &upstreamErr):
		return formatUpstreamError(operation, upstreamErr, err)
	case errors.As(err, &networkErr):
		return template(operation, "Could not reach the Barion API.",
			[]string{
				"Check your network connection",
				"Verify the selected environment (test vs prod) is reachable",
				"Try again in a few moments",
			}, err)
	case errors.As(err, &precondErr):
		return template(operation, "A local precondition failed before calling the API.",
			[]string{
				"Review the request parameters",
				"Specify the source account explicitly if auto-selection failed",
			}, err)
	default:
		return template(operation, "The operation failed.",
			[]string{
				"Review the request parameters",
				"Try again; if the problem persists, inspect the error details below",
			}, err)
	}
}

func formatTransportError(operation string, te *barion.TransportError, err error) string {
	body := strings.ToLower(te.Body)

	switch te.StatusCode {
	case 401, 403:
		return template(operation, "Authentication with the Barion API failed.",
			[]string{
				"Verify the POS key or wallet API key is correct",
				"Make sure the key belongs to the selected environment (test vs prod)",
				"Check that the key has not been revoked",
			}, err)
	case 400:
		bullets := []string{"Review the request parameters against the tool description"}
		switch {
		case strings.Contains(body, "currency"):
			bullets = append(bullets, "Use one of the supported currencies: HUF, EUR, USD, CZK")
		case strings.Contains(body, "email"):
			bullets = append(bullets, "Check the e-mail address format of the payee or recipient")
		case strings.Contains(body, "amount"):
			bullets = append(bullets, "The amount must be positive and within the payment's total")
		case strings.Contains(body, "paymenttype") || strings.Contains(body, "payment type"):
			bullets = append(bullets, "Use one of: Immediate, Reservation, DelayedCapture")
		case strings.Contains(body, "payee"):
			bullets = append(bullets, "The payee must be a registered wallet e-mail address")
		}
		return template(operation, "The Barion API rejected the request as invalid.", bullets, err)
	case 404:
		var bullet string
		switch {
		case strings.Contains(body, "transaction"):
			bullet = "Check the transaction ID; list the payment state to see its transactions"
		case strings.Contains(body, "payment"):
			bullet = "Check the payment ID; it must come from a previous start_payment call"
		case strings.Contains(body, "account"):
			bullet = "Check the account ID; list the wallet balance to see your accounts"
		default:
			bullet = "Check the identifier in the request"
		}
		return template(operation, "The requested resource was not found.",
			[]string{bullet, "Make sure you are using the environment the resource was created in"}, err)
	case 500, 502, 503:
		return template(operation, "The Barion API reported a server error.",
			[]string{
				"This is an upstream problem, not a request problem",
				"Try again later",
			}, err)
	default:
		return template(operation, fmt.Sprintf("The Barion API returned an unexpected HTTP %d.", te.StatusCode),
			[]string{"Inspect the response body below", "Try again later"}, err)
	}
}

// upstreamErrorBullets maps known upstream error codes to remediation hints.
var upstreamErrorBullets = []struct {
	codes   []string
	bullets []string
}{
	{
		codes:   []string{"ModelValidation", "InvalidModel"},
		bullets: []string{"One or more request fields failed upstream validation", "Review the request parameters"},
	},
	{
		codes:   []string{"PaymentNotFound", "TransactionNotFound", "AccountNotFound", "NotFound"},
		bullets: []string{"The referenced payment, transaction or account does not exist", "Check the identifier and the environment"},
	},
	{
		codes:   []string{"InvalidPaymentStatus", "InvalidState", "InvalidTransactionStatus"},
		bullets: []string{"The payment is not in a state that allows this operation", "Fetch the payment state to see what is currently possible"},
	},
	{
		codes:   []string{"InsufficientFunds", "NotEnoughMoney", "InsufficientBalance"},
		bullets: []string{"The wallet balance does not cover the requested amount", "Check the wallet balance and lower the amount"},
	},
	{
		codes:   []string{"AmountTooHigh", "InvalidAmount"},
		bullets: []string{"The amount exceeds what this operation allows", "A capture or refund cannot exceed the original transaction total"},
	},
	{
		codes:   []string{"Expired", "PaymentTimedOut", "ReservationExpired"},
		bullets: []string{"The payment or reservation window has expired", "Start a new payment"},
	},
	{
		codes:   []string{"Unauthorized", "AuthenticationFailed", "InvalidApiKey", "InvalidPOSKey"},
		bullets: []string{"The credential was rejected by the upstream", "Verify the key and the selected environment"},
	},
}

func formatUpstreamError(operation string, ue *barion.UpstreamError, err error) string {
	for _, mapping := range upstreamErrorBullets {
		for _, code := range mapping.codes {
			if ue.HasCode(code) {
				return template(operation, "The Barion API reported a domain error.", mapping.bullets, err)
			}
		}
	}
	return template(operation, "The Barion API reported a domain error.",
		[]string{
			"Inspect the upstream error codes below",
			"Review the request parameters",
		}, err)
}

// template renders the shared error layout: cause, remediation bullets, and
// the original error text verbatim.
func template(operation, cause string, bullets []string, err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s failed\n\n%s\n\n", operation, cause)
	for _, bullet := range bullets {
		fmt.Fprintf(&b, "- %s\n", bullet)
	}
	fmt.Fprintf(&b, "\nError details:\n```\n%v\n```", err)
	return Truncate(b.String())
}
