package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	barion "github.com/kaliszkypeter/barion-mcp"
)

// PaymentClient issues Smart Gateway calls. The POS key is embedded in every
// request body (POSTs) or query string (GETs), matching the upstream
// authentication convention for payment operations.
type PaymentClient struct {
	posKey string
	s      settings
}

// NewPaymentClient creates a payment client for the given environment and
// POS key. The key is held by the client instance, not by process-wide
// state, so multiple independently configured clients can coexist.
func NewPaymentClient(env barion.Environment, posKey string, opts ...Option) *PaymentClient {
	return &PaymentClient{
		posKey: posKey,
		s:      newSettings(env, opts...),
	}
}

// secrets lists the credential values to redact from diagnostic output.
func (c *PaymentClient) secrets() []string {
	return []string{c.posKey}
}

// StartPayment initiates a payment via POST /v2/Payment/Start.
//
// Optional identifiers are defaulted before the call: an empty
// PaymentRequestId or POSTransactionId becomes a generated UUID, and an
// empty FundingSources list becomes ["All"].
func (c *PaymentClient) StartPayment(ctx context.Context, req barion.StartPaymentRequest) (*barion.StartPaymentResponse, error) {
	req.POSKey = c.posKey
	if req.PaymentRequestId == "" {
		req.PaymentRequestId = uuid.NewString()
	}
	if len(req.FundingSources) == 0 {
		req.FundingSources = []string{"All"}
	}
	for i := range req.Transactions {
		if req.Transactions[i].POSTransactionId == "" {
			req.Transactions[i].POSTransactionId = uuid.NewString()
		}
	}

	var resp barion.StartPaymentResponse
	if err := c.s.call(ctx, http.MethodPost, "/v2/Payment/Start", nil, req, nil, &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPaymentState fetches the current state of a payment via
// GET /v2/Payment/GetPaymentState.
func (c *PaymentClient) GetPaymentState(ctx context.Context, paymentID string) (*barion.PaymentStateResponse, error) {
	query := url.Values{
		"POSKey":    {c.posKey},
		"PaymentId": {paymentID},
	}

	var resp barion.PaymentStateResponse
	if err := c.s.call(ctx, http.MethodGet, "/v2/Payment/GetPaymentState", query, nil, nil, &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FinishReservation finalizes a reserved payment via
// POST /v2/Payment/FinishReservation.
func (c *PaymentClient) FinishReservation(ctx context.Context, req barion.FinishReservationRequest) (*barion.PaymentActionResponse, error) {
	req.POSKey = c.posKey

	var resp barion.PaymentActionResponse
	if err := c.s.call(ctx, http.MethodPost, "/v2/Payment/FinishReservation", nil, req, nil, &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Capture charges a previously authorized delayed-capture payment via
// POST /v2/Payment/Capture.
func (c *PaymentClient) Capture(ctx context.Context, req barion.CaptureRequest) (*barion.PaymentActionResponse, error) {
	req.POSKey = c.posKey

	var resp barion.PaymentActionResponse
	if err := c.s.call(ctx, http.MethodPost, "/v2/Payment/Capture", nil, req, nil, &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelAuthorization releases a delayed-capture authorization via
// POST /v2/Payment/CancelAuthorization.
func (c *PaymentClient) CancelAuthorization(ctx context.Context, paymentID string) (*barion.PaymentActionResponse, error) {
	req := barion.CancelAuthorizationRequest{
		POSKey:    c.posKey,
		PaymentId: paymentID,
	}

	var resp barion.PaymentActionResponse
	if err := c.s.call(ctx, http.MethodPost, "/v2/Payment/CancelAuthorization", nil, req, nil, &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refund returns money to the payer via POST /v2/Payment/Refund.
func (c *PaymentClient) Refund(ctx context.Context, req barion.RefundRequest) (*barion.RefundResponse, error) {
	req.POSKey = c.posKey

	var resp barion.RefundResponse
	if err := c.s.call(ctx, http.MethodPost, "/v2/Payment/Refund", nil, req, nil, &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}
