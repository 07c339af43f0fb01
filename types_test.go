package barion

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"
)

// marshalKeys returns the sorted top-level JSON keys a value marshals to.
func marshalKeys(t *testing.T, v any) []string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestStartPaymentRequest_FieldMapping(t *testing.T) {
	// Every populated field must appear under exactly its upstream
	// PascalCase name; nothing is dropped and nothing leaks in camelCase.
	req := StartPaymentRequest{
		POSKey:               "key",
		PaymentType:          PaymentTypeReservation,
		ReservationPeriod:    "7.00:00:00",
		DelayedCapturePeriod: "1.00:00:00",
		PaymentRequestId:     "req-1",
		FundingSources:       []string{"All"},
		GuestCheckOut:        true,
		Locale:               "hu-HU",
		Currency:             "HUF",
		CallbackUrl:          "https://example.com/cb",
		RedirectUrl:          "https://example.com/r",
		OrderNumber:          "o-1",
		Transactions: []PaymentTransaction{{
			POSTransactionId: "tx-1",
			Payee:            "shop@example.com",
			Total:            100,
		}},
	}

	want := []string{
		"CallbackUrl", "Currency", "DelayedCapturePeriod", "FundingSources",
		"GuestCheckOut", "Locale", "OrderNumber", "POSKey", "PaymentRequestId",
		"PaymentType", "RedirectUrl", "ReservationPeriod", "Transactions",
	}
	got := marshalKeys(t, req)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key set mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestRefundRequest_FieldMapping(t *testing.T) {
	req := RefundRequest{
		POSKey:    "key",
		PaymentId: "p-1",
		TransactionsToRefund: []TransactionToRefund{{
			TransactionId:    "t-1",
			POSTransactionId: "pt-1",
			AmountToRefund:   10,
			Comment:          "oops",
		}},
	}

	want := []string{"POSKey", "PaymentId", "TransactionsToRefund"}
	if got := marshalKeys(t, req); !reflect.DeepEqual(got, want) {
		t.Errorf("key set mismatch: got %v, want %v", got, want)
	}

	data, _ := json.Marshal(req)
	var m map[string][]map[string]any
	_ = json.Unmarshal(data, &m)
	tx := m["TransactionsToRefund"][0]
	for _, key := range []string{"TransactionId", "POSTransactionId", "AmountToRefund", "Comment"} {
		if _, ok := tx[key]; !ok {
			t.Errorf("missing nested key %q", key)
		}
	}
}

func TestSendMoneyRequest_FieldMapping(t *testing.T) {
	req := SendMoneyRequest{
		SourceAccountId: "acc-1",
		Recipient:       "friend@example.com",
		Currency:        "EUR",
		Amount:          12.5,
		Comment:         "lunch",
	}

	want := []string{"Amount", "Comment", "Currency", "Recipient", "SourceAccountId"}
	if got := marshalKeys(t, req); !reflect.DeepEqual(got, want) {
		t.Errorf("key set mismatch: got %v, want %v", got, want)
	}
}

func TestPaymentStateResponse_Roundtrip(t *testing.T) {
	body := `{
		"PaymentId": "p-1",
		"Status": "Succeeded",
		"Currency": "EUR",
		"Total": 25.5,
		"Transactions": [
			{"TransactionId": "t-1", "Status": "Succeeded", "Total": 25.5, "Payee": "shop@example.com"}
		],
		"Errors": []
	}`

	var resp PaymentStateResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Status != PaymentStatusSucceeded {
		t.Errorf("Status = %q, want Succeeded", resp.Status)
	}
	if len(resp.Transactions) != 1 || resp.Transactions[0].Status != TransactionStatusSucceeded {
		t.Errorf("unexpected transactions: %+v", resp.Transactions)
	}
	if len(resp.Errors) != 0 {
		t.Errorf("expected no errors, got %v", resp.Errors)
	}
}
