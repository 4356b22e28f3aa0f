package otp

import (
	"context"
	"testing"
	"time"

	"github.com/CreditPe/CreditPe-Backend/services/security"
)

func TestStubProviderVerifiesFixedCode(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)
	ctx := context.Background()
	phone := "+919876543210"

	if err := provider.RequestCode(ctx, phone); err != nil {
		t.Fatalf("RequestCode returned error: %v", err)
	}

	ok, err := provider.VerifyCode(ctx, phone, StubCode)
	if err != nil {
		t.Fatalf("VerifyCode returned error: %v", err)
	}
	if !ok {
		t.Error("fixed code rejected")
	}
}

func TestStubProviderRejectsWrongCode(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)
	ctx := context.Background()
	phone := "+919876543210"

	if err := provider.RequestCode(ctx, phone); err != nil {
		t.Fatal(err)
	}

	ok, err := provider.VerifyCode(ctx, phone, "000000")
	if err != nil {
		t.Fatalf("VerifyCode returned error: %v", err)
	}
	if ok {
		t.Error("wrong code accepted")
	}

	// The pending dispatch survives a failed attempt
	ok, err = provider.VerifyCode(ctx, phone, StubCode)
	if err != nil || !ok {
		t.Errorf("correct code after failed attempt: ok=%v err=%v", ok, err)
	}
}

func TestStubProviderRequiresPendingDispatch(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)

	if _, err := provider.VerifyCode(context.Background(), "+919876543210", StubCode); err == nil {
		t.Error("VerifyCode without a prior RequestCode did not error")
	}
}

func TestStubProviderCodeIsSingleUse(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), 0)
	ctx := context.Background()
	phone := "+919876543210"

	if err := provider.RequestCode(ctx, phone); err != nil {
		t.Fatal(err)
	}
	if _, err := provider.VerifyCode(ctx, phone, StubCode); err != nil {
		t.Fatal(err)
	}

	if _, err := provider.VerifyCode(ctx, phone, StubCode); err == nil {
		t.Error("code accepted twice")
	}
}

func TestStubProviderHonorsContextCancellation(t *testing.T) {
	provider := NewStubProvider(security.NewCache(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := provider.RequestCode(ctx, "+919876543210"); err == nil {
		t.Error("RequestCode ignored a cancelled context")
	}
}
