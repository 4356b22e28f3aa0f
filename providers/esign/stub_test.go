package esign

import (
	"context"
	"strings"
	"testing"

	"github.com/CreditPe/CreditPe-Backend/services/security"
)

func TestStubProviderSignsWithAnyCode(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)
	ctx := context.Background()
	identityID := "identity-1"

	if err := provider.RequestCode(ctx, identityID, "123412341234"); err != nil {
		t.Fatalf("RequestCode returned error: %v", err)
	}

	result, err := provider.VerifyCode(ctx, identityID, "999999")
	if err != nil {
		t.Fatalf("VerifyCode returned error: %v", err)
	}

	if !strings.HasPrefix(result.Reference, "ESIGN") {
		t.Errorf("signature reference %q missing ESIGN prefix", result.Reference)
	}
	if result.SignedAt == "" {
		t.Error("signature carries no timestamp")
	}
}

func TestStubProviderRequiresPendingSession(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)

	if _, err := provider.VerifyCode(context.Background(), "identity-1", "123456"); err == nil {
		t.Error("VerifyCode without a prior RequestCode did not error")
	}
}

func TestStubProviderSessionIsSingleUse(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)
	ctx := context.Background()
	identityID := "identity-1"

	if err := provider.RequestCode(ctx, identityID, "123412341234"); err != nil {
		t.Fatal(err)
	}
	if _, err := provider.VerifyCode(ctx, identityID, "123456"); err != nil {
		t.Fatal(err)
	}

	if _, err := provider.VerifyCode(ctx, identityID, "123456"); err == nil {
		t.Error("e-sign session verified twice")
	}
}
