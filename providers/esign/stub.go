package esign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/services/security"
	"github.com/CreditPe/CreditPe-Backend/utils"
)

// StubProvider simulates the e-sign ceremony: RequestCode records a pending
// session after a fixed delay, VerifyCode accepts any code against that
// session and mints a signed-document reference. Re-requesting a code for
// the same identity resets the session (resend / change of Aadhaar entry).
type StubProvider struct {
	providers.BaseProvider
	cache *security.Cache
	delay time.Duration
}

func NewStubProvider(cache *security.Cache, delay time.Duration) *StubProvider {
	return &StubProvider{
		BaseProvider: providers.BaseProvider{Name: providers.ESign},
		cache:        cache,
		delay:        delay,
	}
}

func (s *StubProvider) RequestCode(ctx context.Context, identityID string, aadhaarNumber string) error {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	s.cache.InsertWithTTL(s.key(identityID), aadhaarNumber, 10*time.Minute)
	return nil
}

func (s *StubProvider) VerifyCode(ctx context.Context, identityID string, _ string) (SignatureResult, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return SignatureResult{}, ctx.Err()
	}

	if _, err := s.cache.Get(s.key(identityID)); err != nil {
		return SignatureResult{}, errors.New("no pending e-sign session, request an OTP first")
	}

	reference, err := utils.NewReference("ESIGN")
	if err != nil {
		return SignatureResult{}, err
	}

	s.cache.Delete(s.key(identityID))
	return SignatureResult{
		Reference: reference,
		SignedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *StubProvider) key(identityID string) string {
	return fmt.Sprintf("esign:%s", identityID)
}
