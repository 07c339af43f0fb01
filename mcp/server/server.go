package server

import (
	"context"
	"log/slog"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	barion "github.com/kaliszkypeter/barion-mcp"
	"github.com/kaliszkypeter/barion-mcp/client"
	"github.com/kaliszkypeter/barion-mcp/format"
)

// PaymentAPI is the payment-client surface the tool handlers call.
// *client.PaymentClient implements it; tests substitute mocks.
type PaymentAPI interface {
	StartPayment(ctx context.Context, req barion.StartPaymentRequest) (*barion.StartPaymentResponse, error)
	GetPaymentState(ctx context.Context, paymentID string) (*barion.PaymentStateResponse, error)
	FinishReservation(ctx context.Context, req barion.FinishReservationRequest) (*barion.PaymentActionResponse, error)
	Capture(ctx context.Context, req barion.CaptureRequest) (*barion.PaymentActionResponse, error)
	CancelAuthorization(ctx context.Context, paymentID string) (*barion.PaymentActionResponse, error)
	Refund(ctx context.Context, req barion.RefundRequest) (*barion.RefundResponse, error)
}

// WalletAPI is the wallet-client surface the tool handlers call.
// *client.WalletClient implements it.
type WalletAPI interface {
	Balance(ctx context.Context, currency string) ([]barion.Account, error)
	UserHistory(ctx context.Context, params client.HistoryParams) (*barion.UserHistoryResponse, error)
	Statement(ctx context.Context, year, month int, currency string) (*barion.UserHistoryResponse, error)
	WithdrawToBank(ctx context.Context, req barion.WithdrawRequest) (*barion.WithdrawResponse, error)
	SendMoney(ctx context.Context, req barion.SendMoneyRequest) (*barion.TransferResponse, error)
}

var (
	_ PaymentAPI = (*client.PaymentClient)(nil)
	_ WalletAPI  = (*client.WalletClient)(nil)
)

// Server wraps an MCP server exposing the Barion tool catalog.
type Server struct {
	mcpServer *mcpserver.MCPServer
	payments  PaymentAPI
	wallet    WalletAPI
	logger    *slog.Logger
}

// New creates the MCP server and registers the tool catalog. Payment tools
// require a POS key, wallet tools a wallet API key; tools whose credential
// is absent are not registered. At least one credential must be supplied.
func New(name, version string, cfg *Config) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.POSKey == "" && cfg.WalletKey == "" {
		return nil, barion.ErrMissingCredentials
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeouts := cfg.Timeouts
	if timeouts.RequestTimeout == 0 {
		timeouts = barion.DefaultTimeouts
	}
	if err := timeouts.Validate(); err != nil {
		return nil, err
	}

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithTimeouts(timeouts),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, client.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.BaseURL))
	}

	s := &Server{
		mcpServer: mcpserver.NewMCPServer(name, version),
		logger:    logger,
	}
	if cfg.POSKey != "" {
		s.payments = client.NewPaymentClient(cfg.Environment, cfg.POSKey, opts...)
	}
	if cfg.WalletKey != "" {
		s.wallet = client.NewWalletClient(cfg.Environment, cfg.WalletKey, opts...)
	}

	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	if s.payments != nil {
		s.registerPaymentTools()
	}
	if s.wallet != nil {
		s.registerWalletTools()
	}
}

// ServeStdio attaches the standard-input/output transport and blocks until
// the protocol runtime disconnects.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcpServer)
}

// MCPServer returns the underlying MCP server (for advanced usage).
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// Argument helpers. Tool schemas already constrain types; these only guard
// against the host sending a different JSON type.

func strArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func floatArg(args map[string]any, key string) float64 {
	f, _ := args[key].(float64)
	return f
}

func intArg(args map[string]any, key string) int {
	return int(floatArg(args, key))
}

// outputOptions reads the presentation arguments shared by every tool.
func outputOptions(args map[string]any) (format.OutputMode, format.DetailLevel) {
	mode := format.OutputSummary
	if strArg(args, "outputFormat") == string(format.OutputRaw) {
		mode = format.OutputRaw
	}
	detail := format.DetailConcise
	if strArg(args, "detail") == string(format.DetailFull) {
		detail = format.DetailFull
	}
	return mode, detail
}

// textResult formats a success payload into the tool's single text block.
func textResult(payload any, args map[string]any) *mcpproto.CallToolResult {
	mode, detail := outputOptions(args)
	return mcpproto.NewToolResultText(format.Format(payload, mode, detail))
}

// errorResult formats a failure into an error-flagged text block.
func (s *Server) errorResult(operation string, err error) *mcpproto.CallToolResult {
	s.logger.Debug("tool call failed", "operation", operation, "error", err)
	return mcpproto.NewToolResultError(format.FormatError(operation, err))
}

// withOutputOptions appends the presentation parameters shared by every
// tool declaration.
func withOutputOptions(opts ...mcpproto.ToolOption) []mcpproto.ToolOption {
	return append(opts,
		mcpproto.WithString("outputFormat",
			mcpproto.Description("Response format: 'summary' for a curated markdown synopsis, 'raw' for pretty-printed JSON"),
			mcpproto.Enum("summary", "raw"),
			mcpproto.DefaultString("summary"),
		),
		mcpproto.WithString("detail",
			mcpproto.Description("Summary detail level: 'concise' for a short synopsis, 'full' for every field and list entry"),
			mcpproto.Enum("concise", "full"),
			mcpproto.DefaultString("concise"),
		),
	)
}
