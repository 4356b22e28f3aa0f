package payment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/utils"
)

// StubGateway approves every charge after a fixed delay and mints a
// transaction id. The payload it returns is shaped like a gateway webhook
// body so the persisted record carries the same envelope a real
// integration would.
type StubGateway struct {
	providers.BaseProvider
	delay time.Duration
}

func NewStubGateway(delay time.Duration) *StubGateway {
	return &StubGateway{
		BaseProvider: providers.BaseProvider{Name: providers.PaymentGateway},
		delay:        delay,
	}
}

func (g *StubGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return ChargeResult{}, ctx.Err()
	}

	transactionID, err := utils.NewReference("TXN")
	if err != nil {
		return ChargeResult{}, err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"gateway":        "stub",
		"application_id": req.ApplicationID.String(),
		"amount_minor":   req.AmountMinor,
		"method":         req.Method,
		"charged_at":     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return ChargeResult{}, err
	}

	return ChargeResult{
		TransactionID: transactionID,
		Status:        "completed",
		Payload:       payload,
	}, nil
}
