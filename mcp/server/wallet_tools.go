package server

import (
	"context"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	barion "github.com/kaliszkypeter/barion-mcp"
	"github.com/kaliszkypeter/barion-mcp/client"
	"github.com/kaliszkypeter/barion-mcp/validation"
)

func (s *Server) registerWalletTools() {
	s.mcpServer.AddTool(mcpproto.NewTool("get_wallet_balance",
		withOutputOptions(
			mcpproto.WithDescription("List the wallet accounts and their balances, optionally filtered to one currency."),
			mcpproto.WithTitleAnnotation("Get wallet balance"),
			mcpproto.WithReadOnlyHintAnnotation(true),
			mcpproto.WithIdempotentHintAnnotation(true),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("currency",
				mcpproto.Description("Only show the account held in this currency"),
				mcpproto.Enum("HUF", "EUR", "USD", "CZK"),
			),
		)...,
	), s.handleBalance)

	s.mcpServer.AddTool(mcpproto.NewTool("get_wallet_history",
		withOutputOptions(
			mcpproto.WithDescription("Fetch wallet history entries, most recent first. Pass the continuation token from a previous page to fetch the next one."),
			mcpproto.WithTitleAnnotation("Get wallet history"),
			mcpproto.WithReadOnlyHintAnnotation(true),
			mcpproto.WithIdempotentHintAnnotation(true),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("continuationToken",
				mcpproto.Description("Opaque paging cursor from a previous get_wallet_history response"),
			),
			mcpproto.WithString("currency",
				mcpproto.Description("Only show entries in this currency"),
				mcpproto.Enum("HUF", "EUR", "USD", "CZK"),
			),
		)...,
	), s.handleHistory)

	s.mcpServer.AddTool(mcpproto.NewTool("get_wallet_statement",
		withOutputOptions(
			mcpproto.WithDescription("Fetch the monthly wallet statement for a given year, month and currency."),
			mcpproto.WithTitleAnnotation("Get wallet statement"),
			mcpproto.WithReadOnlyHintAnnotation(true),
			mcpproto.WithIdempotentHintAnnotation(true),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithNumber("year",
				mcpproto.Required(),
				mcpproto.Description("Statement year, e.g. 2025"),
				mcpproto.Min(2000),
				mcpproto.Max(2100),
			),
			mcpproto.WithNumber("month",
				mcpproto.Required(),
				mcpproto.Description("Statement month (1-12)"),
				mcpproto.Min(1),
				mcpproto.Max(12),
			),
			mcpproto.WithString("currency",
				mcpproto.Required(),
				mcpproto.Description("Statement currency"),
				mcpproto.Enum("HUF", "EUR", "USD", "CZK", "RON", "PLN"),
			),
		)...,
	), s.handleStatement)

	s.mcpServer.AddTool(mcpproto.NewTool("withdraw_to_bank",
		withOutputOptions(
			mcpproto.WithDescription("Withdraw money from the wallet to a bank account."),
			mcpproto.WithTitleAnnotation("Withdraw to bank"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithIdempotentHintAnnotation(false),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithNumber("amount", mcpproto.Required(), mcpproto.Description("Amount to withdraw")),
			mcpproto.WithString("currency",
				mcpproto.Required(),
				mcpproto.Description("Withdrawal currency"),
				mcpproto.Enum("HUF", "EUR", "USD", "CZK"),
			),
			mcpproto.WithString("accountNumber", mcpproto.Required(), mcpproto.Description("Beneficiary bank account number")),
			mcpproto.WithString("accountFormat",
				mcpproto.Description("Account number format"),
				mcpproto.Enum("IBAN", "Giro", "Other"),
				mcpproto.DefaultString("IBAN"),
			),
			mcpproto.WithString("recipientName", mcpproto.Required(), mcpproto.Description("Name of the beneficiary")),
			mcpproto.WithString("comment", mcpproto.Description("Optional transfer note")),
		)...,
	), s.handleWithdraw)

	s.mcpServer.AddTool(mcpproto.NewTool("send_money",
		withOutputOptions(
			mcpproto.WithDescription("Send money to another Barion wallet addressed by e-mail. When no source account is given, the first wallet account matching the currency is used."),
			mcpproto.WithTitleAnnotation("Send money"),
			mcpproto.WithReadOnlyHintAnnotation(false),
			mcpproto.WithIdempotentHintAnnotation(false),
			mcpproto.WithOpenWorldHintAnnotation(true),
			mcpproto.WithString("recipient", mcpproto.Required(), mcpproto.Description("E-mail address of the receiving wallet")),
			mcpproto.WithNumber("amount", mcpproto.Required(), mcpproto.Description("Amount to send")),
			mcpproto.WithString("currency",
				mcpproto.Required(),
				mcpproto.Description("Transfer currency"),
				mcpproto.Enum("HUF", "EUR", "USD", "CZK"),
			),
			mcpproto.WithString("sourceAccountId",
				mcpproto.Description("Sending account; auto-selected by currency when omitted"),
			),
			mcpproto.WithString("comment", mcpproto.Description("Optional transfer note")),
		)...,
	), s.handleSendMoney)
}

func (s *Server) handleBalance(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	currency := strArg(args, "currency")
	if currency != "" {
		if err := s.validateArgs(validation.ValidateCurrency(currency)); err != nil {
			return s.errorResult("get_wallet_balance", err), nil
		}
	}

	accounts, err := s.wallet.Balance(ctx, currency)
	if err != nil {
		return s.errorResult("get_wallet_balance", err), nil
	}
	return textResult(accounts, args), nil
}

func (s *Server) handleHistory(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	resp, err := s.wallet.UserHistory(ctx, client.HistoryParams{
		ContinuationToken: strArg(args, "continuationToken"),
		Currency:          strArg(args, "currency"),
	})
	if err != nil {
		return s.errorResult("get_wallet_history", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleStatement(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	year := intArg(args, "year")
	month := intArg(args, "month")
	currency := strArg(args, "currency")

	if err := s.validateArgs(
		validation.ValidateStatementPeriod(year, month),
		validation.ValidateStatementCurrency(currency),
	); err != nil {
		return s.errorResult("get_wallet_statement", err), nil
	}

	resp, err := s.wallet.Statement(ctx, year, month, currency)
	if err != nil {
		return s.errorResult("get_wallet_statement", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleWithdraw(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	if err := s.validateArgs(
		validation.ValidateAmount(floatArg(args, "amount")),
		validation.ValidateCurrency(strArg(args, "currency")),
	); err != nil {
		return s.errorResult("withdraw_to_bank", err), nil
	}

	accountFormat := strArg(args, "accountFormat")
	if accountFormat == "" {
		accountFormat = "IBAN"
	}

	resp, err := s.wallet.WithdrawToBank(ctx, barion.WithdrawRequest{
		Currency:      strArg(args, "currency"),
		Amount:        floatArg(args, "amount"),
		RecipientName: strArg(args, "recipientName"),
		BankAccount: barion.BankAccountNumber{
			Format:        accountFormat,
			AccountNumber: strArg(args, "accountNumber"),
		},
		Comment: strArg(args, "comment"),
	})
	if err != nil {
		return s.errorResult("withdraw_to_bank", err), nil
	}
	return textResult(resp, args), nil
}

func (s *Server) handleSendMoney(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()

	if err := s.validateArgs(
		validation.ValidateEmail(strArg(args, "recipient")),
		validation.ValidateAmount(floatArg(args, "amount")),
		validation.ValidateCurrency(strArg(args, "currency")),
	); err != nil {
		return s.errorResult("send_money", err), nil
	}

	resp, err := s.wallet.SendMoney(ctx, barion.SendMoneyRequest{
		SourceAccountId: strArg(args, "sourceAccountId"),
		Recipient:       strArg(args, "recipient"),
		Currency:        strArg(args, "currency"),
		Amount:          floatArg(args, "amount"),
		Comment:         strArg(args, "comment"),
	})
	if err != nil {
		return s.errorResult("send_money", err), nil
	}
	return textResult(resp, args), nil
}
