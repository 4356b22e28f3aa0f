package models

type ConsentParams struct {
	Terms   bool `json:"terms"`
	Privacy bool `json:"privacy"`
	ESign   bool `json:"esign"`
}

func (c ConsentParams) All() bool {
	return c.Terms && c.Privacy && c.ESign
}

type ESignRequestOTPParams struct {
	AadhaarNumber string `json:"aadhaar_number" binding:"required"`
}

type ESignVerifyOTPParams struct {
	Code string `json:"code" binding:"required"`
}

type ESignResponse struct {
	Reference string `json:"reference"`
	SignedAt  string `json:"signed_at"`
}
