package eligibility

import (
	"context"
	"time"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/google/uuid"
)

// ApprovedCreditLimit is the limit the simulated check always grants.
const ApprovedCreditLimit int64 = 300000

var milestones = []Milestone{
	{Progress: 20, Label: "Verifying documents..."},
	{Progress: 40, Label: "Checking identity..."},
	{Progress: 60, Label: "Running CIBIL score check..."},
	{Progress: 80, Label: "Calculating credit limit..."},
	{Progress: 100, Label: "Finalizing approval..."},
}

// StubProvider walks the fixed milestone sequence with a fixed per-step
// delay and always resolves eligible. There is no risk computation here;
// the delay exists only to preserve the contract shape a real bureau check
// would have.
type StubProvider struct {
	providers.BaseProvider
	stepDelay time.Duration
}

func NewStubProvider(stepDelay time.Duration) *StubProvider {
	return &StubProvider{
		BaseProvider: providers.BaseProvider{Name: providers.Eligibility},
		stepDelay:    stepDelay,
	}
}

func (s *StubProvider) Check(ctx context.Context, _ uuid.UUID) (Decision, error) {
	for range milestones {
		select {
		case <-time.After(s.stepDelay):
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		}
	}

	return Decision{
		Eligible:    true,
		CreditLimit: ApprovedCreditLimit,
		Milestones:  milestones,
	}, nil
}
