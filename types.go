// Package barion defines the wire types, error taxonomy, and environment
// configuration shared by the Barion API clients and the MCP tool layer.
//
// All request and response structs mirror the upstream Barion REST API
// field names (PascalCase) via their JSON tags; the structs themselves are
// the complete field-renaming table between this module's camelCase world
// and the upstream convention.
package barion

// PaymentType selects the Barion payment scenario.
type PaymentType string

const (
	// PaymentTypeImmediate charges the payer right away.
	PaymentTypeImmediate PaymentType = "Immediate"

	// PaymentTypeReservation reserves the amount until FinishReservation.
	PaymentTypeReservation PaymentType = "Reservation"

	// PaymentTypeDelayedCapture authorizes the amount until Capture or
	// CancelAuthorization.
	PaymentTypeDelayedCapture PaymentType = "DelayedCapture"
)

// PaymentStatus is the lifecycle state of a payment as reported by the
// upstream API. The adapter relays these values without interpretation
// beyond presentation.
type PaymentStatus string

const (
	PaymentStatusPrepared           PaymentStatus = "Prepared"
	PaymentStatusStarted            PaymentStatus = "Started"
	PaymentStatusInProgress         PaymentStatus = "InProgress"
	PaymentStatusWaiting            PaymentStatus = "Waiting"
	PaymentStatusReserved           PaymentStatus = "Reserved"
	PaymentStatusAuthorized         PaymentStatus = "Authorized"
	PaymentStatusCanceled           PaymentStatus = "Canceled"
	PaymentStatusSucceeded          PaymentStatus = "Succeeded"
	PaymentStatusFailed             PaymentStatus = "Failed"
	PaymentStatusPartiallySucceeded PaymentStatus = "PartiallySucceeded"
	PaymentStatusExpired            PaymentStatus = "Expired"
)

// TransactionStatus is the sub-lifecycle of a single transaction within a
// payment.
type TransactionStatus string

const (
	TransactionStatusPrepared          TransactionStatus = "Prepared"
	TransactionStatusStarted           TransactionStatus = "Started"
	TransactionStatusSucceeded         TransactionStatus = "Succeeded"
	TransactionStatusTimeout           TransactionStatus = "Timeout"
	TransactionStatusShopIsDeleted     TransactionStatus = "ShopIsDeleted"
	TransactionStatusShopCanceled      TransactionStatus = "ShopCanceled"
	TransactionStatusUserCanceled      TransactionStatus = "UserCanceled"
	TransactionStatusReserved          TransactionStatus = "Reserved"
	TransactionStatusAuthorized        TransactionStatus = "Authorized"
	TransactionStatusExpired           TransactionStatus = "Expired"
	TransactionStatusRefunded          TransactionStatus = "Refunded"
	TransactionStatusPartiallyRefunded TransactionStatus = "PartiallyRefunded"
)

// PaymentCurrencies are the currencies accepted by the payment operations.
var PaymentCurrencies = []string{"HUF", "EUR", "USD", "CZK"}

// StatementCurrencies are the currencies accepted by the monthly statement
// operation. Superset of PaymentCurrencies.
var StatementCurrencies = []string{"HUF", "EUR", "USD", "CZK", "RON", "PLN"}

// ErrorItem is one entry of the Errors array every upstream response may
// carry even on a 2xx status.
type ErrorItem struct {
	// ErrorCode is the upstream machine-readable code (e.g. "ModelValidation").
	ErrorCode string `json:"ErrorCode"`

	// Title is a short human-readable summary.
	Title string `json:"Title"`

	// Description elaborates on the cause, when the upstream provides one.
	Description string `json:"Description"`

	// AuthData identifies the credential the error relates to, if any.
	AuthData string `json:"AuthData,omitempty"`
}

// Item is a line item of a payment transaction.
type Item struct {
	Name        string  `json:"Name"`
	Description string  `json:"Description"`
	Quantity    float64 `json:"Quantity"`
	Unit        string  `json:"Unit"`
	UnitPrice   float64 `json:"UnitPrice"`
	ItemTotal   float64 `json:"ItemTotal"`
}

// PaymentTransaction is one transaction of a payment being started.
type PaymentTransaction struct {
	// POSTransactionId is the merchant-side transaction identifier.
	// Defaulted to a generated UUID by the client when empty.
	POSTransactionId string `json:"POSTransactionId"`

	// Payee is the e-mail address of the recipient wallet.
	Payee string `json:"Payee"`

	// Total is the amount of the transaction in the payment's currency.
	Total float64 `json:"Total"`

	// Comment is an optional free-text note shown to the payer.
	Comment string `json:"Comment,omitempty"`

	// Items is the optional line-item breakdown of the transaction.
	Items []Item `json:"Items,omitempty"`
}

// StartPaymentRequest is the body of POST /v2/Payment/Start.
type StartPaymentRequest struct {
	POSKey string `json:"POSKey"`

	// PaymentType is Immediate, Reservation or DelayedCapture.
	PaymentType PaymentType `json:"PaymentType"`

	// ReservationPeriod is required for Reservation payments
	// (d.hh:mm:ss format, e.g. "7.00:00:00").
	ReservationPeriod string `json:"ReservationPeriod,omitempty"`

	// DelayedCapturePeriod is required for DelayedCapture payments.
	DelayedCapturePeriod string `json:"DelayedCapturePeriod,omitempty"`

	// PaymentRequestId is the merchant-side payment identifier.
	// Defaulted to a generated UUID by the client when empty.
	PaymentRequestId string `json:"PaymentRequestId"`

	// FundingSources lists the accepted funding sources; defaults to ["All"].
	FundingSources []string `json:"FundingSources"`

	// GuestCheckOut allows payers without a Barion wallet.
	GuestCheckOut bool `json:"GuestCheckOut"`

	// Locale controls the language of the hosted payment page.
	Locale string `json:"Locale,omitempty"`

	// Currency is one of PaymentCurrencies.
	Currency string `json:"Currency"`

	// CallbackUrl receives upstream state-change notifications. The adapter
	// only forwards this string; it runs no webhook receiver.
	CallbackUrl string `json:"CallbackUrl,omitempty"`

	// RedirectUrl is where the payer is sent after completing the payment.
	RedirectUrl string `json:"RedirectUrl,omitempty"`

	// OrderNumber is an optional merchant order reference.
	OrderNumber string `json:"OrderNumber,omitempty"`

	Transactions []PaymentTransaction `json:"Transactions"`
}

// StartPaymentResponse is the body returned by /v2/Payment/Start.
type StartPaymentResponse struct {
	PaymentId        string        `json:"PaymentId"`
	PaymentRequestId string        `json:"PaymentRequestId"`
	Status           PaymentStatus `json:"Status"`
	QRUrl            string        `json:"QRUrl"`

	// GatewayUrl is the hosted payment page the payer must open.
	GatewayUrl string `json:"GatewayUrl"`

	CallbackUrl  string        `json:"CallbackUrl"`
	RedirectUrl  string        `json:"RedirectUrl"`
	Transactions []Transaction `json:"Transactions"`
	Errors       []ErrorItem   `json:"Errors"`
}

// Transaction is a transaction as echoed back by the upstream API.
type Transaction struct {
	TransactionId    string            `json:"TransactionId"`
	POSTransactionId string            `json:"POSTransactionId"`
	Status           TransactionStatus `json:"Status"`
	Currency         string            `json:"Currency"`
	Total            float64           `json:"Total"`
	Payee            string            `json:"Payee"`
	TransactionTime  string            `json:"TransactionTime"`
	Items            []Item            `json:"Items"`
}

// PaymentStateResponse is the body returned by /v2/Payment/GetPaymentState.
type PaymentStateResponse struct {
	PaymentId             string        `json:"PaymentId"`
	PaymentRequestId      string        `json:"PaymentRequestId"`
	POSId                 string        `json:"POSId"`
	POSName               string        `json:"POSName"`
	Status                PaymentStatus `json:"Status"`
	PaymentType           PaymentType   `json:"PaymentType"`
	FundingSource         string        `json:"FundingSource"`
	AllowedFundingSources []string      `json:"AllowedFundingSources"`
	GuestCheckout         bool          `json:"GuestCheckout"`
	CreatedAt             string        `json:"CreatedAt"`
	ValidUntil            string        `json:"ValidUntil"`
	CompletedAt           string        `json:"CompletedAt"`
	ReservedUntil         string        `json:"ReservedUntil"`
	Currency              string        `json:"Currency"`
	Total                 float64       `json:"Total"`
	SuggestedLocale       string        `json:"SuggestedLocale"`
	Transactions          []Transaction `json:"Transactions"`
	Errors                []ErrorItem   `json:"Errors"`
}

// TransactionToFinish names a reserved transaction and the amount to
// finalize; used by FinishReservation and Capture.
type TransactionToFinish struct {
	TransactionId string  `json:"TransactionId"`
	Total         float64 `json:"Total"`
}

// FinishReservationRequest is the body of POST /v2/Payment/FinishReservation.
type FinishReservationRequest struct {
	POSKey       string                `json:"POSKey"`
	PaymentId    string                `json:"PaymentId"`
	Transactions []TransactionToFinish `json:"Transactions"`
}

// CaptureRequest is the body of POST /v2/Payment/Capture.
type CaptureRequest struct {
	POSKey       string                `json:"POSKey"`
	PaymentId    string                `json:"PaymentId"`
	Transactions []TransactionToFinish `json:"Transactions"`
}

// CancelAuthorizationRequest is the body of POST /v2/Payment/CancelAuthorization.
type CancelAuthorizationRequest struct {
	POSKey    string `json:"POSKey"`
	PaymentId string `json:"PaymentId"`
}

// TransactionToRefund names a completed transaction and the amount to
// return to the payer.
type TransactionToRefund struct {
	TransactionId    string  `json:"TransactionId"`
	POSTransactionId string  `json:"POSTransactionId"`
	AmountToRefund   float64 `json:"AmountToRefund"`

	// Comment is an optional note attached to the refund.
	Comment string `json:"Comment,omitempty"`
}

// RefundRequest is the body of POST /v2/Payment/Refund.
type RefundRequest struct {
	POSKey               string                `json:"POSKey"`
	PaymentId            string                `json:"PaymentId"`
	TransactionsToRefund []TransactionToRefund `json:"TransactionsToRefund"`
}

// RefundedTransaction is one refund result entry.
type RefundedTransaction struct {
	TransactionId string  `json:"TransactionId"`
	Total         float64 `json:"Total"`
	Comment       string  `json:"Comment"`
}

// RefundResponse is the body returned by /v2/Payment/Refund.
type RefundResponse struct {
	PaymentId            string                `json:"PaymentId"`
	RefundedTransactions []RefundedTransaction `json:"RefundedTransactions"`
	Errors               []ErrorItem           `json:"Errors"`
}

// PaymentActionResponse is the shared shape returned by FinishReservation,
// Capture and CancelAuthorization.
type PaymentActionResponse struct {
	PaymentId    string        `json:"PaymentId"`
	Status       PaymentStatus `json:"Status"`
	Transactions []Transaction `json:"Transactions"`
	Errors       []ErrorItem   `json:"Errors"`
}

// Balance is the monetary position of a wallet account.
type Balance struct {
	AvailableBalance float64 `json:"AvailableBalance"`
	LockedBalance    float64 `json:"LockedBalance"`
	PendingBalance   float64 `json:"PendingBalance"`
	TotalBalance     float64 `json:"TotalBalance"`
}

// Account is one wallet account. A user may hold several, distinguished by
// currency; the adapter assumes at most one per currency when auto-selecting
// a transfer source (first match wins).
type Account struct {
	AccountId string  `json:"AccountId"`
	Currency  string  `json:"Currency"`
	Balance   Balance `json:"Balance"`

	// Owner is the e-mail address of the account holder.
	Owner string `json:"Owner"`
}

// AccountsResponse is the body returned by /v2/Accounts/Get.
type AccountsResponse struct {
	Accounts []Account   `json:"Accounts"`
	Errors   []ErrorItem `json:"Errors"`
}

// AccountRef is a compact account reference inside history entries.
type AccountRef struct {
	AccountId string `json:"AccountId"`
	Currency  string `json:"Currency"`
	Owner     string `json:"Owner"`
}

// HistoryEntry is one wallet history item, ordered by upstream-assigned
// recency; the adapter imposes no reordering.
type HistoryEntry struct {
	TransactionId string `json:"TransactionId"`

	// Type is the upstream transaction kind (e.g. "TransferToExistingUser",
	// "Withdraw", "CardPayment").
	Type string `json:"Type"`

	// Amount is signed: negative for outgoing, positive for incoming.
	Amount        float64    `json:"Amount"`
	Currency      string     `json:"Currency"`
	HappenedAtUtc string     `json:"HappenedAtUtc"`
	Description   string     `json:"Description,omitempty"`
	SourceAccount AccountRef `json:"SourceAccount"`
	TargetAccount AccountRef `json:"TargetAccount"`
}

// UserHistoryResponse is the body returned by /v3/UserHistory, for both the
// cursor-paged history view and the monthly statement view.
type UserHistoryResponse struct {
	Transactions []HistoryEntry `json:"Transactions"`

	// ContinuationToken is the opaque cursor for the next page; passed
	// through to the caller unchanged.
	ContinuationToken string      `json:"ContinuationToken"`
	Errors            []ErrorItem `json:"Errors"`
}

// BankAccountNumber identifies the beneficiary account of a withdrawal.
type BankAccountNumber struct {
	// Format is "IBAN", "Giro" or "Other".
	Format string `json:"Format"`

	AccountNumber string `json:"AccountNumber"`
}

// WithdrawRequest is the body of POST /v3/Withdraw/BankTransfer.
type WithdrawRequest struct {
	Currency      string            `json:"Currency"`
	Amount        float64           `json:"Amount"`
	RecipientName string            `json:"RecipientName"`
	BankAccount   BankAccountNumber `json:"BankAccount"`
	Comment       string            `json:"Comment,omitempty"`
}

// WithdrawResponse is the body returned by /v3/Withdraw/BankTransfer.
type WithdrawResponse struct {
	TransactionId string      `json:"TransactionId"`
	Currency      string      `json:"Currency"`
	Amount        float64     `json:"Amount"`
	Errors        []ErrorItem `json:"Errors"`
}

// SendMoneyRequest is the body of POST /v2/Transfer/Email.
type SendMoneyRequest struct {
	// SourceAccountId is the sending wallet account. When empty, the client
	// auto-selects the first account matching Currency.
	SourceAccountId string `json:"SourceAccountId"`

	// Recipient is the e-mail address of the receiving wallet.
	Recipient string  `json:"Recipient"`
	Currency  string  `json:"Currency"`
	Amount    float64 `json:"Amount"`
	Comment   string  `json:"Comment,omitempty"`
}

// TransferResponse is the body returned by /v2/Transfer/Email.
type TransferResponse struct {
	TransactionId string      `json:"TransactionId"`
	Currency      string      `json:"Currency"`
	Amount        float64     `json:"Amount"`
	Recipient     string      `json:"Recipient"`
	Errors        []ErrorItem `json:"Errors"`
}
