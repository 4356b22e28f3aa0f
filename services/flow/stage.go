package flow

// Stage identifies one step of the application journey. Auth and e-sign are
// sub-staged because each has an internal back edge.
type Stage string

const (
	StageHome         Stage = "home"
	StageAuthPhone    Stage = "auth.phone"
	StageAuthOTP      Stage = "auth.otp"
	StageKYC          Stage = "kyc"
	StageDocuments    Stage = "documents"
	StageEligibility  Stage = "eligibility"
	StageOffer        Stage = "offer"
	StageESignConsent Stage = "esign.consent"
	StageESignAadhaar Stage = "esign.aadhaar"
	StageESignOTP     Stage = "esign.otp"
	StagePayment      Stage = "payment"
	StageDashboard    Stage = "dashboard"
)

// transitions is the single source of truth for stage ordering. Progression
// is forward-only except the two sanctioned back edges: OTP entry back to
// phone entry, and e-sign OTP back to Aadhaar entry.
var transitions = map[Stage][]Stage{
	StageHome:         {StageAuthPhone},
	StageAuthPhone:    {StageAuthOTP},
	StageAuthOTP:      {StageKYC, StageAuthPhone},
	StageKYC:          {StageDocuments},
	StageDocuments:    {StageEligibility},
	StageEligibility:  {StageOffer},
	StageOffer:        {StageESignConsent, StageHome},
	StageESignConsent: {StageESignAadhaar},
	StageESignAadhaar: {StageESignOTP},
	StageESignOTP:     {StagePayment, StageESignAadhaar},
	StagePayment:      {StageDashboard},
	StageDashboard:    {StageHome},
}

// Can reports whether the journey may move from one stage directly to
// another.
func Can(from Stage, to Stage) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
