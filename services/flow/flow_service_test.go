package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/CreditPe/CreditPe-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

type memoryStageStore struct {
	stages map[string]string
}

func newMemoryStageStore() *memoryStageStore {
	return &memoryStageStore{stages: make(map[string]string)}
}

func (m *memoryStageStore) Stage(_ context.Context, key string) (string, error) {
	return m.stages[key], nil
}

func (m *memoryStageStore) SetStage(_ context.Context, key string, stage string) error {
	m.stages[key] = stage
	return nil
}

func (m *memoryStageStore) ClearStage(_ context.Context, key string) error {
	delete(m.stages, key)
	return nil
}

func newTestService() (*Service, *memoryStageStore) {
	store := newMemoryStageStore()
	logger := &logging.Logger{Logger: logrus.New()}
	return NewService(store, logger), store
}

func TestCurrentDefaultsToHome(t *testing.T) {
	svc, _ := newTestService()

	stage, err := svc.Current(context.Background(), "fresh-session")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if stage != StageHome {
		t.Errorf("fresh session stage = %q, want %q", stage, StageHome)
	}
}

func TestAdvanceWalksTheFullJourney(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	key := "session-1"

	journey := []Stage{
		StageAuthPhone,
		StageAuthOTP,
		StageKYC,
		StageDocuments,
		StageEligibility,
		StageOffer,
		StageESignConsent,
		StageESignAadhaar,
		StageESignOTP,
		StagePayment,
		StageDashboard,
	}

	for _, next := range journey {
		if err := svc.Advance(ctx, key, next); err != nil {
			t.Fatalf("Advance to %q failed: %v", next, err)
		}

		current, err := svc.Current(ctx, key)
		if err != nil {
			t.Fatalf("Current returned error: %v", err)
		}
		if current != next {
			t.Fatalf("after Advance, stage = %q, want %q", current, next)
		}
	}
}

func TestAdvanceRejectsIllegalJumps(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		from Stage
		to   Stage
	}{
		{"home straight to payment", StageHome, StagePayment},
		{"kyc skipping documents", StageKYC, StageEligibility},
		{"documents to offer", StageDocuments, StageOffer},
		{"payment without e-sign", StageOffer, StagePayment},
		{"dashboard without payment", StageESignOTP, StageDashboard},
		{"backwards into kyc", StageDocuments, StageKYC},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := "session-" + tc.name
			store.stages[key] = string(tc.from)

			err := svc.Advance(ctx, key, tc.to)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("Advance %q -> %q: err = %v, want ErrIllegalTransition", tc.from, tc.to, err)
			}

			if store.stages[key] != string(tc.from) {
				t.Errorf("stage moved to %q on a rejected transition", store.stages[key])
			}
		})
	}
}

func TestAdvanceAllowsBackEdges(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		from Stage
		to   Stage
	}{
		{"change number", StageAuthOTP, StageAuthPhone},
		{"decline offer", StageOffer, StageHome},
		{"re-enter aadhaar", StageESignOTP, StageESignAadhaar},
		{"restart from dashboard", StageDashboard, StageHome},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := "session-" + tc.name
			store.stages[key] = string(tc.from)

			if err := svc.Advance(ctx, key, tc.to); err != nil {
				t.Errorf("Advance %q -> %q failed: %v", tc.from, tc.to, err)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	store.stages["session-1"] = string(StagePayment)

	if err := svc.Require(ctx, "session-1", StagePayment); err != nil {
		t.Errorf("Require at matching stage failed: %v", err)
	}

	if err := svc.Require(ctx, "session-1", StageKYC); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Require at wrong stage: err = %v, want ErrIllegalTransition", err)
	}

	// A fresh session is at home
	if err := svc.Require(ctx, "session-2", StageHome); err != nil {
		t.Errorf("Require home on fresh session failed: %v", err)
	}
}

func TestMigrateMovesStageToNewKey(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	store.stages["phone:+919876543210"] = string(StageAuthOTP)

	if err := svc.Migrate(ctx, "phone:+919876543210", "identity-1", StageKYC); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	if got := store.stages["identity-1"]; got != string(StageKYC) {
		t.Errorf("new key stage = %q, want %q", got, StageKYC)
	}
	if _, exists := store.stages["phone:+919876543210"]; exists {
		t.Error("old key still holds a stage after Migrate")
	}
}

func TestMigrateRejectsIllegalTransition(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	store.stages["phone:+919876543210"] = string(StageAuthPhone)

	err := svc.Migrate(ctx, "phone:+919876543210", "identity-1", StageKYC)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Migrate before OTP entry: err = %v, want ErrIllegalTransition", err)
	}
}
