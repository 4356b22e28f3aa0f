package eligibility

import (
	"context"

	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/google/uuid"
)

// Milestone is one staged progress marker surfaced to the applicant while
// the check runs.
type Milestone struct {
	Progress int    `json:"progress"`
	Label    string `json:"label"`
}

type Decision struct {
	Eligible    bool        `json:"eligible"`
	CreditLimit int64       `json:"credit_limit"`
	Milestones  []Milestone `json:"milestones"`
}

// Provider adjudicates an application. The wired variant is a simulation;
// a bureau integration would implement the same contract with real
// pending/approved/declined semantics.
type Provider interface {
	providers.Provider
	Check(ctx context.Context, applicationID uuid.UUID) (Decision, error)
}
