package server

import (
	"context"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	barion "github.com/kaliszkypeter/barion-mcp"
	"github.com/kaliszkypeter/barion-mcp/validation"
)

// Default validity windows applied when the caller does not specify one.
const (
	defaultReservationPeriod    = "7.00:00:00"
	defaultDelayedCapturePeriod = "1.00:00:00"
)

func (s *Server) registerPaymentTools() {
	s.mcpServer.AddTool(mcpproto.NewTool("start_payment",
		withOutputOptions(
			mcpproto.WithDescription("Start a new Barion payment. Returns the payment identifier and the gateway URL the payer must open to complete the payment."),
			mcpproto.WithTitleAnnotation("Start payment"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithDestructiveHintAnnotation(false),
			mcpproto.WithIdempotentHintAnnotation(false),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("paymentType",
				mcpproto.Required(),
				mcpproto.Description("Payment scenario: 'Immediate' charges right away, 'Reservation' reserves the amount until finish_reservation, 'DelayedCapture' authorizes until capture_payment or cancel_authorization"),
				mcpproto.Enum("Immediate", "Reservation", "DelayedCapture"),
			),
			mcpproto.WithNumber("amount",
				mcpproto.Required(),
				mcpproto.Description("Payment amount in the given currency"),
			),
			mcpproto.WithString("currency",
				mcpproto.Required(),
				mcpproto.Description("Payment currency"),
				mcpproto.Enum("HUF", "EUR", "USD", "CZK"),
			),
			mcpproto.WithString("payee",
				mcpproto.Required(),
				mcpproto.Description("E-mail address of the wallet receiving the payment"),
			),
			mcpproto.WithString("comment",
				mcpproto.Description("Free-text comment shown to the payer"),
			),
			mcpproto.WithString("callbackUrl",
				mcpproto.Description("URL the upstream notifies on payment state changes; forwarded as-is, no webhook receiver is run here"),
			),
			mcpproto.WithString("redirectUrl",
				mcpproto.Description("URL the payer is redirected to after completing the payment"),
			),
			mcpproto.WithString("paymentRequestId",
				mcpproto.Description("Merchant-side payment identifier; a UUID is generated when omitted"),
			),
			mcpproto.WithString("reservationPeriod",
				mcpproto.Description("Reservation validity in d.hh:mm:ss format (Reservation payments only, default 7.00:00:00)"),
			),
		)...,
	), s.handleStartPayment)

	s.mcpServer.AddTool(mcpproto.NewTool("get_payment_state",
		withOutputOptions(
			mcpproto.WithDescription("Fetch the current state of a payment, including its transactions."),
			mcpproto.WithTitleAnnotation("Get payment state"),
			mcpproto.WithReadOnlyHintAnnotation(true),
			mcpproto.WithIdempotentHintAnnotation(true),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("paymentId",
				mcpproto.Required(),
				mcpproto.Description("Payment identifier returned by start_payment"),
			),
		)...,
	), s.handleGetPaymentState)

	s.mcpServer.AddTool(mcpproto.NewTool("finish_reservation",
		withOutputOptions(
			mcpproto.WithDescription("Finalize a reserved payment by charging the reserved amount (or part of it)."),
			mcpproto.WithTitleAnnotation("Finish reservation"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithIdempotentHintAnnotation(false),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("paymentId", mcpproto.Required(), mcpproto.Description("Payment identifier")),
			mcpproto.WithString("transactionId", mcpproto.Required(), mcpproto.Description("Reserved transaction to finalize")),
			mcpproto.WithNumber("amount", mcpproto.Required(), mcpproto.Description("Amount to charge; must not exceed the reserved total")),
		)...,
	), s.handleFinishReservation)

	s.mcpServer.AddTool(mcpproto.NewTool("capture_payment",
		withOutputOptions(
			mcpproto.WithDescription("Capture a previously authorized delayed-capture payment."),
			mcpproto.WithTitleAnnotation("Capture payment"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithIdempotentHintAnnotation(false),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("paymentId", mcpproto.Required(), mcpproto.Description("Payment identifier")),
			mcpproto.WithString("transactionId", mcpproto.Required(), mcpproto.Description("Authorized transaction to capture")),
			mcpproto.WithNumber("amount", mcpproto.Required(), mcpproto.Description("Amount to capture; must not exceed the authorized total")),
		)...,
	), s.handleCapture)

	s.mcpServer.AddTool(mcpproto.NewTool("cancel_authorization",
		withOutputOptions(
			mcpproto.WithDescription("Release the authorization of a delayed-capture payment without charging it."),
			mcpproto.WithTitleAnnotation("Cancel authorization"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithDestructiveHintAnnotation(true),
			mcpproto.WithIdempotentHintAnnotation(true),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("paymentId", mcpproto.Required(), mcpproto.Description("Payment identifier")),
		)...,
	), s.handleCancelAuthorization)

	s.mcpServer.AddTool(mcpproto.NewTool("refund_payment",
		withOutputOptions(
			mcpproto.WithDescription("Refund a completed transaction, fully or partially."),
			mcpproto.WithTitleAnnotation("Refund payment"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithDestructiveHintAnnotation(true),
			mcpproto.WithIdempotentHintAnnotation(false),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("paymentId", mcpproto.Required(), mcpproto.Description("Payment identifier")),
			mcpproto.WithString("transactionId", mcpproto.Required(), mcpproto.Description("Transaction to refund")),
			mcpproto.WithNumber("amount", mcpproto.Required(), mcpproto.Description("Amount to refund; must not exceed the captured total")),
			mcpproto.WithString("comment", mcpproto.Description("Optional note attached to the refund")),
		)...,
	), s.handleRefund)
}

func (s *Server) handleStartPayment(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	paymentType := strArg(args, "paymentType")
	amount := floatArg(args, "amount")
	currency := strArg(args, "currency")
	payee := strArg(args, "payee")

	if err := s.validateArgs(
		validation.ValidatePaymentType(paymentType),
		validation.ValidateAmount(amount),
		validation.ValidateCurrency(currency),
		validation.ValidateEmail(payee),
	); err != nil {
		return s.errorResult("start_payment", err), nil
	}

	startReq := barion.StartPaymentRequest{
		PaymentType:      barion.PaymentType(paymentType),
		PaymentRequestId: strArg(args, "paymentRequestId"),
		GuestCheckOut:    true,
		Currency:         currency,
		CallbackUrl:      strArg(args, "callbackUrl"),
		RedirectUrl:      strArg(args, "redirectUrl"),
		Transactions: []barion.PaymentTransaction{{
			Payee:   payee,
			Total:   amount,
			Comment: strArg(args, "comment"),
		}},
	}

	switch startReq.PaymentType {
	case barion.PaymentTypeReservation:
		startReq.ReservationPeriod = strArg(args, "reservationPeriod")
		if startReq.ReservationPeriod == "" {
			startReq.ReservationPeriod = defaultReservationPeriod
		}
		if err := validation.ValidatePeriod(startReq.ReservationPeriod); err != nil {
			return s.errorResult("start_payment", &barion.PreconditionError{Reason: "invalid argument", Err: err}), nil
		}
	case barion.PaymentTypeDelayedCapture:
		startReq.DelayedCapturePeriod = defaultDelayedCapturePeriod
	}

	resp, err := s.payments.StartPayment(ctx, startReq)
	if err != nil {
		return s.errorResult("start_payment", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleGetPaymentState(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	resp, err := s.payments.GetPaymentState(ctx, strArg(args, "paymentId"))
	if err != nil {
		return s.errorResult("get_payment_state", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleFinishReservation(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	if err := s.validateArgs(validation.ValidateAmount(floatArg(args, "amount"))); err != nil {
		return s.errorResult("finish_reservation", err), nil
	}

	resp, err := s.payments.FinishReservation(ctx, barion.FinishReservationRequest{
		PaymentId: strArg(args, "paymentId"),
		Transactions: []barion.TransactionToFinish{{
			TransactionId: strArg(args, "transactionId"),
			Total:         floatArg(args, "amount"),
		}},
	})
	if err != nil {
		return s.errorResult("finish_reservation", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleCapture(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	if err := s.validateArgs(validation.ValidateAmount(floatArg(args, "amount"))); err != nil {
		return s.errorResult("capture_payment", err), nil
	}

	resp, err := s.payments.Capture(ctx, barion.CaptureRequest{
		PaymentId: strArg(args, "paymentId"),
		Transactions: []barion.TransactionToFinish{{
			TransactionId: strArg(args, "transactionId"),
			Total:         floatArg(args, "amount"),
		}},
	})
	if err != nil {
		return s.errorResult("capture_payment", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleCancelAuthorization(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	resp, err := s.payments.CancelAuthorization(ctx, strArg(args, "paymentId"))
	if err != nil {
		return s.errorResult("cancel_authorization", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleRefund(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	if err := s.validateArgs(validation.ValidateAmount(floatArg(args, "amount"))); err != nil {
		return s.errorResult("refund_payment", err), nil
	}

	resp, err := s.payments.Refund(ctx, barion.RefundRequest{
		PaymentId: strArg(args, "paymentId"),
		TransactionsToRefund: []barion.TransactionToRefund{{
			TransactionId:  strArg(args, "transactionId"),
			AmountToRefund: floatArg(args, "amount"),
			Comment:        strArg(args, "comment"),
		}},
	})
	if err != nil {
		return s.errorResult("refund_payment", err), nil
	}
	return textResult(resp, args), nil
}

// validateArgs wraps the first failed validation as a local precondition
// error so the error formatter classifies it correctly.
func (s *Server) validateArgs(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return &barion.PreconditionError{Reason: "invalid argument", Err: err}
		}
	}
	return nil
}
