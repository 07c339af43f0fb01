// Command barion-mcp runs the Barion MCP server on a stdio transport.
//
// Credentials and environment selection come from flags or equivalently
// named environment variables; at least one credential (POS key or wallet
// API key) is required. Tools whose credential is absent are not exposed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	barion "github.com/kaliszkypeter/barion-mcp"
	"github.com/kaliszkypeter/barion-mcp/mcp/server"
)

const (
	serverName    = "barion-mcp"
	serverVersion = "1.0.0"
)

func main() {
	fs := flag.NewFlagSet(serverName, flag.ExitOnError)
	posKey := fs.String("pos-key", "", "Barion POS key for payment operations (env: BARION_POS_KEY)")
	walletKey := fs.String("wallet-key", "", "Barion wallet API key for wallet operations (env: BARION_WALLET_KEY)")
	environment := fs.String("environment", "", "Barion environment: test or prod (env: BARION_ENVIRONMENT, default: test)")
	verbose := fs.Bool("verbose", false, "Log upstream requests and responses (credentials redacted)")

	_ = fs.Parse(os.Args[1:])

	if *posKey == "" {
		*posKey = os.Getenv("BARION_POS_KEY")
	}
	if *walletKey == "" {
		*walletKey = os.Getenv("BARION_WALLET_KEY")
	}
	if *environment == "" {
		*environment = os.Getenv("BARION_ENVIRONMENT")
	}

	if *posKey == "" && *walletKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no credentials supplied (set --pos-key or --wallet-key, or BARION_POS_KEY / BARION_WALLET_KEY)")
		os.Exit(1)
	}

	env, err := barion.ParseEnvironment(*environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP transport; diagnostics go to stderr.
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv, err := server.New(serverName, serverVersion, &server.Config{
		Environment: env,
		POSKey:      *posKey,
		WalletKey:   *walletKey,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting server", "environment", env,
		"payment_tools", *posKey != "", "wallet_tools", *walletKey != "")

	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
