package models

import (
	db "github.com/CreditPe/CreditPe-Backend/db/sqlc"
)

func ToIdentityResponse(identity *db.Identity) *IdentityResponse {
	return &IdentityResponse{
		ID:        identity.ID.String(),
		Phone:     identity.Phone,
		CreatedAt: identity.CreatedAt,
	}
}

func ToApplicationResponse(app *db.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:             app.ID.String(),
		Reference:      app.Reference,
		Status:         app.ApplicationStatus,
		EmploymentType: app.EmploymentType.String,
		MonthlyIncome:  app.MonthlyIncome.Int64,
		City:           app.City.String,
		State:          app.State.String,
		Pincode:        app.Pincode.String,
		CreatedAt:      app.CreatedAt,
	}

	if app.CreditLimit.Valid {
		limit := app.CreditLimit.Int64
		resp.CreditLimit = &limit
	}

	return resp
}

func ToDocumentResponse(doc *db.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:           doc.ID.String(),
		DocumentType: doc.DocumentType,
		FilePath:     doc.FilePath,
		Verified:     doc.Verified,
		CreatedAt:    doc.CreatedAt,
	}
}

func ToProfileResponse(profile *db.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:       profile.ID.String(),
		Phone:    profile.Phone,
		FullName: profile.FullName.String,
		Email:    profile.Email.String,
		Gender:   profile.Gender.String,
	}

	if profile.DateOfBirth.Valid {
		resp.DateOfBirth = profile.DateOfBirth.Time.Format("2006-01-02")
	}

	return resp
}

func ToPaymentResponse(pay *db.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            pay.ID.String(),
		Amount:        pay.Amount,
		PaymentMethod: pay.PaymentMethod.String,
		PaymentStatus: pay.PaymentStatus,
		TransactionID: pay.TransactionID.String,
		CreatedAt:     pay.CreatedAt,
	}
}
