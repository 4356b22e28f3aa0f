package payment

import (
	"context"
	"encoding/json"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/google/uuid"
)

type ChargeRequest struct {
	ApplicationID uuid.UUID
	AmountMinor   int64
	Method        string
}

type ChargeResult struct {
	TransactionID string
	Status        string
	Payload       json.RawMessage
}

// Gateway collects the joining fee. The wired variant simulates the charge;
// a real gateway would implement the same contract with genuine
// success/failure/pending states and idempotency keys.
type Gateway interface {
	providers.Provider
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
