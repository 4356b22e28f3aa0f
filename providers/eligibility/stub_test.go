package eligibility

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStubProviderAlwaysApproves(t *testing.T) {
	provider := NewStubProvider(0)

	decision, err := provider.Check(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	if !decision.Eligible {
		t.Error("simulated check resolved ineligible")
	}
	if decision.CreditLimit != ApprovedCreditLimit {
		t.Errorf("credit limit = %d, want %d", decision.CreditLimit, ApprovedCreditLimit)
	}
}

func TestStubProviderMilestones(t *testing.T) {
	provider := NewStubProvider(0)

	decision, err := provider.Check(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	if len(decision.Milestones) != 5 {
		t.Fatalf("milestone count = %d, want 5", len(decision.Milestones))
	}

	for i, milestone := range decision.Milestones {
		want := (i + 1) * 20
		if milestone.Progress != want {
			t.Errorf("milestone %d progress = %d, want %d", i, milestone.Progress, want)
		}
		if milestone.Label == "" {
			t.Errorf("milestone %d has no label", i)
		}
	}

	if last := decision.Milestones[len(decision.Milestones)-1]; last.Progress != 100 {
		t.Errorf("final milestone progress = %d, want 100", last.Progress)
	}
}

func TestStubProviderHonorsContextCancellation(t *testing.T) {
	provider := NewStubProvider(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := provider.Check(ctx, uuid.New()); err == nil {
		t.Error("Check ignored a cancelled context")
	}
}
