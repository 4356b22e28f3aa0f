package models

import "time"

type RequestOTPParams struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOTPParams struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type ChangeNumberParams struct {
	Phone string `json:"phone" binding:"required"`
}

type IdentityResponse struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type IdentityWithToken struct {
	Identity *IdentityResponse `json:"identity"`
	Token    string            `json:"token"`
}
