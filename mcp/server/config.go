// Package server exposes the Barion payment and wallet operations as MCP
// tools. Each tool is a static declaration (name, parameter schema,
// description, side-effect hints) wired to one client call plus one
// formatter call; no tool holds state across invocations.
package server

import (
	"log/slog"
	"net/http"

	barion "github.com/kaliszkypeter/barion-mcp"
)

// Config holds the server configuration.
type Config struct {
	// Environment selects the upstream API deployment (test or prod).
	Environment barion.Environment

	// POSKey is the payment credential. Payment tools are registered only
	// when it is non-empty.
	POSKey string

	// WalletKey is the wallet API credential. Wallet tools are registered
	// only when it is non-empty.
	WalletKey string

	// Logger is the diagnostic logger. If nil, slog.Default() is used.
	// Request/response records are emitted with credentials redacted.
	Logger *slog.Logger

	// HTTPClient optionally overrides the HTTP client used for upstream
	// calls.
	HTTPClient *http.Client

	// BaseURL optionally overrides the environment-derived API origin.
	// Intended for tests.
	BaseURL string

	// Timeouts configures the per-call upstream timeout. Zero value means
	// barion.DefaultTimeouts.
	Timeouts barion.TimeoutConfig
}

// DefaultConfig returns a Config targeting the test environment.
func DefaultConfig() *Config {
	return &Config{
		Environment: barion.EnvironmentTest,
		Logger:      slog.Default(),
		Timeouts:    barion.DefaultTimeouts,
	}
}
