package esign

import (
	"context"

	"github.com/CreditPe/CreditPe-Backend/providers"
)

type SignatureResult struct {
	Reference string `json:"reference"`
	SignedAt  string `json:"signed_at"`
}

// Provider runs the Aadhaar e-sign ceremony: an OTP is dispatched to the
// Aadhaar-registered number, and a correct code yields a signed-document
// reference. The wired variant simulates both legs.
type Provider interface {
	providers.Provider
	RequestCode(ctx context.Context, identityID string, aadhaarNumber string) error
	VerifyCode(ctx context.Context, identityID string, code string) (SignatureResult, error)
}
