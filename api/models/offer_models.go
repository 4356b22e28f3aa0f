package models

type OfferBenefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type OfferResponse struct {
	CreditLimit  int64          `json:"credit_limit"`
	JoiningFee   int64          `json:"joining_fee"`
	AnnualFee    int64          `json:"annual_fee"`
	WelcomeBonus string         `json:"welcome_bonus"`
	ValidDays    int            `json:"valid_days"`
	Benefits     []OfferBenefit `json:"benefits"`
}
