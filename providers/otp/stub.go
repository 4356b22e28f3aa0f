package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/services/security"
)

// StubCode is the code every stub dispatch "sends". Kept fixed so demo and
// test clients can complete the flow without a real SMS channel.
const StubCode = "123456"

// StubProvider simulates an OTP channel: RequestCode records a pending
// dispatch, VerifyCode checks the fixed code against it. Selected via
// OTP_PROVIDER=stub.
type StubProvider struct {
	providers.BaseProvider
	cache *security.Cache
	delay time.Duration
}

func NewStubProvider(cache *security.Cache, delay time.Duration) *StubProvider {
	return &StubProvider{
		BaseProvider: providers.BaseProvider{Name: providers.StubOTP},
		cache:        cache,
		delay:        delay,
	}
}

func (s *StubProvider) RequestCode(ctx context.Context, phone string) error {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	s.cache.InsertWithTTL(s.key(phone), StubCode, 10*time.Minute)
	return nil
}

func (s *StubProvider) VerifyCode(ctx context.Context, phone string, code string) (bool, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return false, ctx.Err()
	}

	pending, err := s.cache.Get(s.key(phone))
	if err != nil {
		return false, errors.New("no pending verification for this number")
	}

	if code != pending.(string) {
		return false, nil
	}

	s.cache.Delete(s.key(phone))
	return true, nil
}

func (s *StubProvider) key(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}
