package otp

import (
	"context"

	"github.com/CreditPe/CreditPe-Backend/providers"
)

// Provider dispatches and checks phone verification codes. Phone numbers
// must be canonicalized to E.164 before they reach a provider.
type Provider interface {
	providers.Provider
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone string, code string) (bool, error)
}
