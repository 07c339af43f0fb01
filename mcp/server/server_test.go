package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	barion "github.com/kaliszkypeter/barion-mcp"
	"github.com/kaliszkypeter/barion-mcp/client"
	"github.com/kaliszkypeter/barion-mcp/format"
)

// mockPaymentAPI implements PaymentAPI with overridable call results.
type mockPaymentAPI struct {
	startResp  *barion.StartPaymentResponse
	stateResp  *barion.PaymentStateResponse
	actionResp *barion.PaymentActionResponse
	refundResp *barion.RefundResponse
	err        error
	calls      int
}

func (m *mockPaymentAPI) StartPayment(ctx context.Context, req barion.StartPaymentRequest) (*barion.StartPaymentResponse, error) {
	m.calls++
	return m.startResp, m.err
}

func (m *mockPaymentAPI) GetPaymentState(ctx context.Context, paymentID string) (*barion.PaymentStateResponse, error) {
	m.calls++
	return m.stateResp, m.err
}

func (m *mockPaymentAPI) FinishReservation(ctx context.Context, req barion.FinishReservationRequest) (*barion.PaymentActionResponse, error) {
	m.calls++
	return m.actionResp, m.err
}

func (m *mockPaymentAPI) Capture(ctx context.Context, req barion.CaptureRequest) (*barion.PaymentActionResponse, error) {
	m.calls++
	return m.actionResp, m.err
}

func (m *mockPaymentAPI) CancelAuthorization(ctx context.Context, paymentID string) (*barion.PaymentActionResponse, error) {
	m.calls++
	return m.actionResp, m.err
}

func (m *mockPaymentAPI) Refund(ctx context.Context, req barion.RefundRequest) (*barion.RefundResponse, error) {
	m.calls++
	return m.refundResp, m.err
}

// mockWalletAPI implements WalletAPI with overridable call results.
type mockWalletAPI struct {
	accounts     []barion.Account
	historyResp  *barion.UserHistoryResponse
	withdrawResp *barion.WithdrawResponse
	transferResp *barion.TransferResponse
	err          error
	calls        int
}

func (m *mockWalletAPI) Balance(ctx context.Context, currency string) ([]barion.Account, error) {
	m.calls++
	return m.accounts, m.err
}

func (m *mockWalletAPI) UserHistory(ctx context.Context, params client.HistoryParams) (*barion.UserHistoryResponse, error) {
	m.calls++
	return m.historyResp, m.err
}

func (m *mockWalletAPI) Statement(ctx context.Context, year, month int, currency string) (*barion.UserHistoryResponse, error) {
	m.calls++
	return m.historyResp, m.err
}

func (m *mockWalletAPI) WithdrawToBank(ctx context.Context, req barion.WithdrawRequest) (*barion.WithdrawResponse, error) {
	m.calls++
	return m.withdrawResp, m.err
}

func (m *mockWalletAPI) SendMoney(ctx context.Context, req barion.SendMoneyRequest) (*barion.TransferResponse, error) {
	m.calls++
	return m.transferResp, m.err
}

func newTestServer(payments PaymentAPI, wallet WalletAPI) *Server {
	return &Server{
		mcpServer: mcpserver.NewMCPServer("test", "0.0.0"),
		payments:  payments,
		wallet:    wallet,
		logger:    slog.Default(),
	}
}

func callRequest(name string, args map[string]any) mcpproto.CallToolRequest {
	req := mcpproto.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcpproto.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcpproto.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", res.Content[0])
	}
	return text.Text
}

func TestNew_NoCredentials(t *testing.T) {
	_, err := New("test", "0.0.0", &Config{Environment: barion.EnvironmentTest})
	if !errors.Is(err, barion.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestNew_ToolGatingByCredential(t *testing.T) {
	s, err := New("test", "0.0.0", &Config{Environment: barion.EnvironmentTest, POSKey: "pk"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.payments == nil || s.wallet != nil {
		t.Error("POS key alone should enable payment tools only")
	}

	s, err = New("test", "0.0.0", &Config{Environment: barion.EnvironmentTest, WalletKey: "wk"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.payments != nil || s.wallet == nil {
		t.Error("wallet key alone should enable wallet tools only")
	}
}

func TestHandleGetPaymentState_Success(t *testing.T) {
	payments := &mockPaymentAPI{stateResp: &barion.PaymentStateResponse{
		PaymentId: "p-1",
		Status:    barion.PaymentStatusSucceeded,
	}}
	s := newTestServer(payments, nil)

	res, err := s.handleGetPaymentState(context.Background(), callRequest("get_payment_state", map[string]any{
		"paymentId": "p-1",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), format.MarkerPaymentCompleted) {
		t.Errorf("output missing completion marker:\n%s", resultText(t, res))
	}
}

func TestHandleStatement_EmptyPeriod(t *testing.T) {
	wallet := &mockWalletAPI{historyResp: &barion.UserHistoryResponse{}}
	s := newTestServer(nil, wallet)

	res, err := s.handleStatement(context.Background(), callRequest("get_wallet_statement", map[string]any{
		"year":     float64(2025),
		"month":    float64(1),
		"currency": "EUR",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got := resultText(t, res); got != format.EmptyStatementMessage {
		t.Errorf("output = %q, want %q", got, format.EmptyStatementMessage)
	}
}

func TestHandleStatement_InvalidMonth(t *testing.T) {
	wallet := &mockWalletAPI{historyResp: &barion.UserHistoryResponse{}}
	s := newTestServer(nil, wallet)

	res, err := s.handleStatement(context.Background(), callRequest("get_wallet_statement", map[string]any{
		"year":     float64(2025),
		"month":    float64(13),
		"currency": "EUR",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if wallet.calls != 0 {
		t.Errorf("upstream was called %d times for an invalid request", wallet.calls)
	}
	if !strings.Contains(resultText(t, res), "invalid month") {
		t.Errorf("output missing validation detail:\n%s", resultText(t, res))
	}
}

func TestHandleStartPayment_InvalidCurrency(t *testing.T) {
	payments := &mockPaymentAPI{}
	s := newTestServer(payments, nil)

	res, err := s.handleStartPayment(context.Background(), callRequest("start_payment", map[string]any{
		"paymentType": "Immediate",
		"amount":      float64(10),
		"currency":    "GBP",
		"payee":       "shop@example.com",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if payments.calls != 0 {
		t.Errorf("upstream was called %d times for an invalid request", payments.calls)
	}
}

func TestHandleStartPayment_ReservationDefaultsPeriod(t *testing.T) {
	payments := &mockPaymentAPI{startResp: &barion.StartPaymentResponse{PaymentId: "p-1"}}
	s := newTestServer(payments, nil)

	res, err := s.handleStartPayment(context.Background(), callRequest("start_payment", map[string]any{
		"paymentType": "Reservation",
		"amount":      float64(10),
		"currency":    "EUR",
		"payee":       "shop@example.com",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if payments.calls != 1 {
		t.Errorf("upstream calls = %d, want 1", payments.calls)
	}
}

func TestHandleSendMoney_NoMatchingAccount(t *testing.T) {
	wallet := &mockWalletAPI{err: &barion.PreconditionError{
		Reason: "no wallet account with currency USD to send from",
		Err:    barion.ErrNoMatchingAccount,
	}}
	s := newTestServer(nil, wallet)

	res, err := s.handleSendMoney(context.Background(), callRequest("send_money", map[string]any{
		"recipient": "friend@example.com",
		"amount":    float64(10),
		"currency":  "USD",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if !strings.Contains(resultText(t, res), "no wallet account with currency USD") {
		t.Errorf("output missing precondition reason:\n%s", resultText(t, res))
	}
}

func TestHandleBalance_RawOutput(t *testing.T) {
	accounts := []barion.Account{{AccountId: "a-1", Currency: "EUR"}}
	wallet := &mockWalletAPI{accounts: accounts}
	s := newTestServer(nil, wallet)

	res, err := s.handleBalance(context.Background(), callRequest("get_wallet_balance", map[string]any{
		"outputFormat": "raw",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	want, _ := json.MarshalIndent(accounts, "", "  ")
	if got := resultText(t, res); got != string(want) {
		t.Errorf("raw output differs from pretty JSON:\ngot  %s\nwant %s", got, want)
	}
}

func TestHandleRefund_UpstreamError(t *testing.T) {
	payments := &mockPaymentAPI{err: &barion.UpstreamError{Errors: []barion.ErrorItem{
		{ErrorCode: "InvalidPaymentStatus", Title: "Invalid status"},
	}}}
	s := newTestServer(payments, nil)

	res, err := s.handleRefund(context.Background(), callRequest("refund_payment", map[string]any{
		"paymentId":     "p-1",
		"transactionId": "t-1",
		"amount":        float64(5),
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if !strings.Contains(resultText(t, res), "not in a state") {
		t.Errorf("output missing invalid-state remediation:\n%s", resultText(t, res))
	}
}
