package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	barion "github.com/kaliszkypeter/barion-mcp"
)

// apiKeyHeader authenticates wallet operations.
const apiKeyHeader = "x-api-key"

// WalletClient issues wallet API calls authenticated by the API key header.
type WalletClient struct {
	apiKey string
	s      settings
}

// NewWalletClient creates a wallet client for the given environment and
// API key.
func NewWalletClient(env barion.Environment, apiKey string, opts ...Option) *WalletClient {
	return &WalletClient{
		apiKey: apiKey,
		s:      newSettings(env, opts...),
	}
}

func (c *WalletClient) header() http.Header {
	return http.Header{apiKeyHeader: {c.apiKey}}
}

func (c *WalletClient) secrets() []string {
	return []string{c.apiKey}
}

// Accounts lists the caller's wallet accounts via GET /v2/Accounts/Get.
func (c *WalletClient) Accounts(ctx context.Context) (*barion.AccountsResponse, error) {
	var resp barion.AccountsResponse
	if err := c.s.call(ctx, http.MethodGet, "/v2/Accounts/Get", nil, nil, c.header(), &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Balance returns the wallet accounts, optionally filtered to a single
// currency. This is a derived view over Accounts; the upstream has no
// dedicated balance endpoint.
func (c *WalletClient) Balance(ctx context.Context, currency string) ([]barion.Account, error) {
	resp, err := c.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		return resp.Accounts, nil
	}
	var filtered []barion.Account
	for _, acc := range resp.Accounts {
		if acc.Currency == currency {
			filtered = append(filtered, acc)
		}
	}
	return filtered, nil
}

// HistoryParams are the query parameters of GET /v3/UserHistory.
type HistoryParams struct {
	// ContinuationToken is the opaque cursor from a previous page. It is
	// passed through to the upstream unchanged; the adapter keeps no paging
	// state of its own.
	ContinuationToken string

	// Currency optionally restricts the history to one currency.
	Currency string

	// Year and Month, when both set, request the monthly statement view.
	Year  int
	Month int
}

// UserHistory fetches wallet history entries via GET /v3/UserHistory.
func (c *WalletClient) UserHistory(ctx context.Context, params HistoryParams) (*barion.UserHistoryResponse, error) {
	query := url.Values{}
	if params.ContinuationToken != "" {
		query.Set("ContinuationToken", params.ContinuationToken)
	}
	if params.Currency != "" {
		query.Set("Currency", params.Currency)
	}
	if params.Year != 0 {
		query.Set("Year", strconv.Itoa(params.Year))
	}
	if params.Month != 0 {
		query.Set("Month", strconv.Itoa(params.Month))
	}

	var resp barion.UserHistoryResponse
	if err := c.s.call(ctx, http.MethodGet, "/v3/UserHistory", query, nil, c.header(), &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Statement fetches the monthly statement view of the wallet history.
func (c *WalletClient) Statement(ctx context.Context, year, month int, currency string) (*barion.UserHistoryResponse, error) {
	return c.UserHistory(ctx, HistoryParams{
		Year:     year,
		Month:    month,
		Currency: currency,
	})
}

// WithdrawToBank sends money to a bank account via
// POST /v3/Withdraw/BankTransfer.
func (c *WalletClient) WithdrawToBank(ctx context.Context, req barion.WithdrawRequest) (*barion.WithdrawResponse, error) {
	var resp barion.WithdrawResponse
	if err := c.s.call(ctx, http.MethodPost, "/v3/Withdraw/BankTransfer", nil, req, c.header(), &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendMoney transfers money to another wallet addressed by e-mail via
// POST /v2/Transfer/Email.
//
// When req.SourceAccountId is empty the client first lists the caller's
// accounts and selects the first one whose currency matches req.Currency.
// If none matches, the call fails locally with a PreconditionError wrapping
// ErrNoMatchingAccount and the transfer endpoint is never contacted. The
// two calls carry no transactional guarantee between them; a concurrent
// account change is an accepted race.
func (c *WalletClient) SendMoney(ctx context.Context, req barion.SendMoneyRequest) (*barion.TransferResponse, error) {
	if req.SourceAccountId == "" {
		accounts, err := c.Accounts(ctx)
		if err != nil {
			return nil, err
		}
		for _, acc := range accounts.Accounts {
			if acc.Currency == req.Currency {
				req.SourceAccountId = acc.AccountId
				break
			}
		}
		if req.SourceAccountId == "" {
			return nil, &barion.PreconditionError{
				Reason: fmt.Sprintf("no wallet account with currency %s to send from", req.Currency),
				Err:    barion.ErrNoMatchingAccount,
			}
		}
	}

	var resp barion.TransferResponse
	if err := c.s.call(ctx, http.MethodPost, "/v2/Transfer/Email", nil, req, c.header(), &resp, c.secrets()); err != nil {
		return nil, err
	}
	return &resp, nil
}
