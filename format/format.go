// Package format renders upstream payloads into the single text block an
// MCP tool call returns. It offers a raw JSON mode and a curated markdown
// summary mode, an output-length ceiling, and a templated error formatter.
//
// All formatters are total: missing or malformed fields render as "N/A" or
// zero rather than failing, so partial upstream payloads never break
// formatting.
package format

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	barion "github.com/kaliszkypeter/barion-mcp"
)

// OutputMode selects between raw JSON and a curated summary.
type OutputMode string

const (
	// OutputRaw renders the payload as pretty-printed JSON.
	OutputRaw OutputMode = "raw"

	// OutputSummary renders a markdown synopsis of the payload.
	OutputSummary OutputMode = "summary"
)

// DetailLevel controls how much of the payload a summary includes.
type DetailLevel string

const (
	// DetailConcise renders a fixed-size synopsis (lists cut at
	// conciseListLimit entries).
	DetailConcise DetailLevel = "concise"

	// DetailFull renders every field and list entry, plus an embedded raw
	// JSON block for success payloads.
	DetailFull DetailLevel = "full"
)

// conciseListLimit caps list entries in concise summaries.
const conciseListLimit = 10

// Status markers embedded in concise payment summaries.
const (
	MarkerPaymentCompleted = "✅ Payment completed"
	MarkerPaymentFailed    = "❌ Payment failed"
)

// EmptyStatementMessage is the exact concise output for a statement or
// history page with zero transactions.
const EmptyStatementMessage = "No transactions found for this period"

// Format renders payload according to mode and detail and applies the
// output-length ceiling. Raw mode ignores the detail level.
func Format(payload any, mode OutputMode, detail DetailLevel) string {
	if mode == OutputRaw {
		return Truncate(rawJSON(payload))
	}

	var text string
	switch p := payload.(type) {
	case *barion.PaymentStateResponse:
		text = formatPaymentState(p, detail)
	case *barion.AccountsResponse:
		text = formatAccounts(p.Accounts, detail)
	case []barion.Account:
		text = formatAccounts(p, detail)
	case *barion.UserHistoryResponse:
		text = formatHistory(p, detail)
	default:
		text = formatGenericSuccess(payload, detail)
	}
	return Truncate(text)
}

// rawJSON pretty-prints any payload; a marshal failure falls back to the
// fmt representation so the formatter stays total.
func rawJSON(payload any) string {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", payload)
	}
	return string(data)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// statusMarker maps a payment status to its synopsis marker line.
func statusMarker(status barion.PaymentStatus) string {
	switch status {
	case barion.PaymentStatusSucceeded:
		return MarkerPaymentCompleted
	case barion.PaymentStatusFailed:
		return MarkerPaymentFailed
	case barion.PaymentStatusReserved:
		return "🔒 Amount reserved"
	case barion.PaymentStatusAuthorized:
		return "🔓 Amount authorized"
	case barion.PaymentStatusCanceled:
		return "🚫 Payment canceled"
	case barion.PaymentStatusExpired:
		return "⌛ Payment expired"
	case "":
		return ""
	default:
		return "⏳ Payment in progress"
	}
}

func formatPaymentState(p *barion.PaymentStateResponse, detail DetailLevel) string {
	var b strings.Builder
	b.WriteString("## Payment state\n\n")
	fmt.Fprintf(&b, "- **Payment ID**: %s\n", orNA(p.PaymentId))
	fmt.Fprintf(&b, "- **Status**: %s\n", orNA(string(p.Status)))
	fmt.Fprintf(&b, "- **Type**: %s\n", orNA(string(p.PaymentType)))
	fmt.Fprintf(&b, "- **Total**: %g %s\n", p.Total, orNA(p.Currency))

	if marker := statusMarker(p.Status); marker != "" {
		b.WriteString("\n" + marker + "\n")
	}

	if detail == DetailFull {
		fmt.Fprintf(&b, "\n- **Payment request ID**: %s\n", orNA(p.PaymentRequestId))
		fmt.Fprintf(&b, "- **POS**: %s (%s)\n", orNA(p.POSName), orNA(p.POSId))
		fmt.Fprintf(&b, "- **Funding source**: %s\n", orNA(p.FundingSource))
		fmt.Fprintf(&b, "- **Created at**: %s\n", orNA(p.CreatedAt))
		fmt.Fprintf(&b, "- **Valid until**: %s\n", orNA(p.ValidUntil))
		fmt.Fprintf(&b, "- **Completed at**: %s\n", orNA(p.CompletedAt))
		fmt.Fprintf(&b, "- **Reserved until**: %s\n", orNA(p.ReservedUntil))
	}

	if len(p.Transactions) > 0 {
		b.WriteString("\n### Transactions\n\n")
		limit := len(p.Transactions)
		if detail == DetailConcise && limit > conciseListLimit {
			limit = conciseListLimit
		}
		for _, tx := range p.Transactions[:limit] {
			fmt.Fprintf(&b, "- %s: %s, %g %s, payee %s\n",
				orNA(tx.TransactionId), orNA(string(tx.Status)), tx.Total, orNA(tx.Currency), orNA(tx.Payee))
		}
		if rest := len(p.Transactions) - limit; rest > 0 {
			fmt.Fprintf(&b, "- ... and %d more\n", rest)
		}
	}

	if detail == DetailFull {
		b.WriteString("\n```json\n" + rawJSON(p) + "\n```\n")
	}
	return b.String()
}

func formatAccounts(accounts []barion.Account, detail DetailLevel) string {
	var b strings.Builder
	b.WriteString("## Wallet balance\n\n")
	if len(accounts) == 0 {
		b.WriteString("No accounts found\n")
		return b.String()
	}

	limit := len(accounts)
	if detail == DetailConcise && limit > conciseListLimit {
		limit = conciseListLimit
	}
	for _, acc := range accounts[:limit] {
		fmt.Fprintf(&b, "- **%s**: %g available", orNA(acc.Currency), acc.Balance.AvailableBalance)
		if detail == DetailFull {
			fmt.Fprintf(&b, " (locked %g, pending %g, total %g, account %s, owner %s)",
				acc.Balance.LockedBalance, acc.Balance.PendingBalance, acc.Balance.TotalBalance,
				orNA(acc.AccountId), orNA(acc.Owner))
		}
		b.WriteString("\n")
	}
	if rest := len(accounts) - limit; rest > 0 {
		fmt.Fprintf(&b, "- ... and %d more\n", rest)
	}

	if detail == DetailFull {
		b.WriteString("\n```json\n" + rawJSON(accounts) + "\n```\n")
	}
	return b.String()
}

func formatHistory(h *barion.UserHistoryResponse, detail DetailLevel) string {
	if len(h.Transactions) == 0 && detail == DetailConcise {
		return EmptyStatementMessage
	}

	var b strings.Builder
	b.WriteString("## Transactions\n\n")
	if len(h.Transactions) == 0 {
		b.WriteString(EmptyStatementMessage + "\n")
	}

	limit := len(h.Transactions)
	if detail == DetailConcise && limit > conciseListLimit {
		limit = conciseListLimit
	}
	for _, entry := range h.Transactions[:limit] {
		fmt.Fprintf(&b, "- %s: %+g %s, %s",
			orNA(entry.HappenedAtUtc), entry.Amount, orNA(entry.Currency), orNA(entry.Type))
		if entry.Description != "" {
			fmt.Fprintf(&b, " (%s)", entry.Description)
		}
		if detail == DetailFull {
			fmt.Fprintf(&b, " (id %s, from %s, to %s)",
				orNA(entry.TransactionId), orNA(entry.SourceAccount.Owner), orNA(entry.TargetAccount.Owner))
		}
		b.WriteString("\n")
	}
	if rest := len(h.Transactions) - limit; rest > 0 {
		fmt.Fprintf(&b, "- ... and %d more\n", rest)
	}

	if h.ContinuationToken != "" {
		fmt.Fprintf(&b, "\nNext page token: `%s`\n", h.ContinuationToken)
	}

	if detail == DetailFull {
		b.WriteString("\n```json\n" + rawJSON(h) + "\n```\n")
	}
	return b.String()
}

// formatGenericSuccess renders payloads without a dedicated formatter
// (start, capture, refund, withdraw and transfer responses). The concise
// view prints the top-level scalar fields; the full view appends the raw
// JSON payload.
func formatGenericSuccess(payload any, detail DetailLevel) string {
	var b strings.Builder
	b.WriteString("## Operation successful\n\n")

	// Round-trip through JSON so the summary follows the upstream field
	// names regardless of the concrete Go type.
	var fields map[string]json.RawMessage
	if data, err := json.Marshal(payload); err == nil {
		_ = json.Unmarshal(data, &fields)
	}
	for _, key := range sortedKeys(fields) {
		if key == "Errors" {
			continue
		}
		raw := fields[key]
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s == "" {
				continue
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", key, s)
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			fmt.Fprintf(&b, "- **%s**: %g\n", key, n)
			continue
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err == nil {
			fmt.Fprintf(&b, "- **%s**: %t\n", key, v)
		}
		// Nested objects and arrays are covered by the full JSON block.
	}

	if detail == DetailFull {
		b.WriteString("\n```json\n" + rawJSON(payload) + "\n```\n")
	}
	return b.String()
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Stable output order for tests and readers.
	sort.Strings(keys)
	return keys
}
