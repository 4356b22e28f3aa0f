package payment

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestStubGatewayCharge(t *testing.T) {
	gateway := NewStubGateway(0)
	appID := uuid.New()

	result, err := gateway.Charge(context.Background(), ChargeRequest{
		ApplicationID: appID,
		AmountMinor:   94300,
		Method:        "upi",
	})
	if err != nil {
		t.Fatalf("Charge returned error: %v", err)
	}

	if result.Status != "completed" {
		t.Errorf("charge status = %q, want completed", result.Status)
	}
	if !strings.HasPrefix(result.TransactionID, "TXN") {
		t.Errorf("transaction id %q missing TXN prefix", result.TransactionID)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(result.Payload, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload["application_id"] != appID.String() {
		t.Errorf("payload application_id = %v, want %v", payload["application_id"], appID)
	}
	if payload["amount_minor"] != float64(94300) {
		t.Errorf("payload amount_minor = %v, want 94300", payload["amount_minor"])
	}
	if payload["method"] != "upi" {
		t.Errorf("payload method = %v, want upi", payload["method"])
	}
}

func TestStubGatewayMintsDistinctTransactionIDs(t *testing.T) {
	gateway := NewStubGateway(0)
	ctx := context.Background()

	first, err := gateway.Charge(ctx, ChargeRequest{ApplicationID: uuid.New(), AmountMinor: 94300, Method: "card"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := gateway.Charge(ctx, ChargeRequest{ApplicationID: uuid.New(), AmountMinor: 94300, Method: "card"})
	if err != nil {
		t.Fatal(err)
	}

	if first.TransactionID == second.TransactionID {
		t.Errorf("two charges share transaction id %q", first.TransactionID)
	}
}
