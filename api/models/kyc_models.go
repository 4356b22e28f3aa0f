package models

import "time"

type KYCParams struct {
	FullName       string `json:"full_name" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	DateOfBirth    string `json:"date_of_birth" binding:"required"`
	Gender         string `json:"gender" binding:"required,oneof=male female other"`
	EmploymentType string `json:"employment_type" binding:"required,oneof=salaried self_employed"`
	MonthlyIncome  int64  `json:"monthly_income" binding:"required,gt=0"`
	AadhaarNumber  string `json:"aadhaar_number" binding:"required,len=12,numeric"`
	PanNumber      string `json:"pan_number" binding:"required,len=10"`
	AddressLine1   string `json:"address_line1" binding:"required,min=5"`
	AddressLine2   string `json:"address_line2"`
	City           string `json:"city" binding:"required,min=2"`
	State          string `json:"state" binding:"required,min=2"`
	Pincode        string `json:"pincode" binding:"required,len=6,numeric"`
}

type ApplicationResponse struct {
	ID             string    `json:"id"`
	Reference      string    `json:"reference"`
	Status         string    `json:"status"`
	EmploymentType string    `json:"employment_type"`
	MonthlyIncome  int64     `json:"monthly_income"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	CreditLimit    *int64    `json:"credit_limit,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
