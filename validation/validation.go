// Package validation provides field validators used by the MCP tool
// handlers before any upstream call is issued. It validates currencies,
// e-mail addresses, amounts, payment types, and statement periods.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	barion "github.com/kaliszkypeter/barion-mcp"
)

var (
	// emailRegex is a pragmatic address check; full RFC 5322 validation is
	// the upstream's job.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// periodRegex matches the d.hh:mm:ss timespan format used by
	// reservation and delayed-capture periods.
	periodRegex = regexp.MustCompile(`^\d+\.\d{2}:\d{2}:\d{2}$`)
)

// ValidateCurrency checks a payment currency against the accepted set.
func ValidateCurrency(currency string) error {
	return validateIn(currency, barion.PaymentCurrencies)
}

// ValidateStatementCurrency checks a statement currency, which additionally
// allows RON and PLN.
func ValidateStatementCurrency(currency string) error {
	return validateIn(currency, barion.StatementCurrencies)
}

func validateIn(currency string, allowed []string) error {
	if currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	for _, c := range allowed {
		if currency == c {
			return nil
		}
	}
	return fmt.Errorf("invalid currency %q (expected one of %s)", currency, strings.Join(allowed, ", "))
}

// ValidateEmail checks an e-mail address used as payee or recipient.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidateAmount checks a monetary amount. Amounts must be strictly
// positive; the upstream rejects zero-value operations.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %v", amount)
	}
	return nil
}

// ValidatePaymentType checks the payment scenario name.
func ValidatePaymentType(pt string) error {
	switch barion.PaymentType(pt) {
	case barion.PaymentTypeImmediate, barion.PaymentTypeReservation, barion.PaymentTypeDelayedCapture:
		return nil
	default:
		return fmt.Errorf("invalid payment type %q (expected Immediate, Reservation or DelayedCapture)", pt)
	}
}

// ValidatePeriod checks a d.hh:mm:ss timespan string.
func ValidatePeriod(period string) error {
	if !periodRegex.MatchString(period) {
		return fmt.Errorf("invalid period %q (expected d.hh:mm:ss, e.g. 7.00:00:00)", period)
	}
	return nil
}

// ValidateStatementPeriod checks a year/month pair for the statement view.
func ValidateStatementPeriod(year, month int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d (expected 1-12)", month)
	}
	return nil
}
