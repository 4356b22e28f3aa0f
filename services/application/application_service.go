package application_service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	db "github.com/CreditPe/CreditPe-Backend/db/sqlc"
	"github.com/CreditPe/CreditPe-Backend/services/monitoring/logging"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
)

// RequiredDocumentTypes are the identity proofs every application must
// carry before the eligibility stage opens.
var RequiredDocumentTypes = []string{"aadhaar", "pan"}

type ApplicationService struct {
	queries db.Querier
	logger  *logging.Logger
}

func NewApplicationService(queries db.Querier, logger *logging.Logger) *ApplicationService {
	return &ApplicationService{
		queries: queries,
		logger:  logger,
	}
}

// RegisterIdentity records a phone-verified identity and its (initially
// empty) profile. Calling it again for the same phone is a no-op that
// returns the existing identity.
func (a *ApplicationService) RegisterIdentity(ctx context.Context, phone string) (*db.Identity, error) {
	identity, err := a.queries.UpsertIdentity(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("upsert identity: %w", err)
	}

	_, err = a.queries.CreateProfile(ctx, db.CreateProfileParams{
		UserID: identity.ID,
		Phone:  phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return &identity, nil
}

type KYCSubmission struct {
	FullName       string
	Email          string
	DateOfBirth    time.Time
	Gender         string
	EmploymentType string
	MonthlyIncome  int64
	AadhaarNumber  string
	PanNumber      string
	AddressLine1   string
	AddressLine2   string
	City           string
	State          string
	Pincode        string
}

// SubmitKYC issues the stage's two writes: a profile update and a new
// application row. The writes are independent calls, no transaction spans
// them.
func (a *ApplicationService) SubmitKYC(ctx context.Context, identityID uuid.UUID, sub KYCSubmission) (*db.Application, error) {
	_, err := a.queries.UpdateProfile(ctx, db.UpdateProfileParams{
		UserID:      identityID,
		FullName:    sql.NullString{String: sub.FullName, Valid: true},
		Email:       sql.NullString{String: sub.Email, Valid: true},
		DateOfBirth: sql.NullTime{Time: sub.DateOfBirth, Valid: true},
		Gender:      sql.NullString{String: sub.Gender, Valid: true},
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	reference, err := utils.NewReference("APP")
	if err != nil {
		return nil, fmt.Errorf("generate application reference: %w", err)
	}

	app, err := a.queries.CreateApplication(ctx, db.CreateApplicationParams{
		UserID:         identityID,
		EmploymentType: sql.NullString{String: sub.EmploymentType, Valid: true},
		MonthlyIncome:  sql.NullInt64{Int64: sub.MonthlyIncome, Valid: true},
		AadhaarNumber:  sql.NullString{String: sub.AadhaarNumber, Valid: true},
		PanNumber:      sql.NullString{String: strings.ToUpper(sub.PanNumber), Valid: true},
		AddressLine1:   sql.NullString{String: sub.AddressLine1, Valid: true},
		AddressLine2:   sql.NullString{String: sub.AddressLine2, Valid: sub.AddressLine2 != ""},
		City:           sql.NullString{String: sub.City, Valid: true},
		State:          sql.NullString{String: sub.State, Valid: true},
		Pincode:        sql.NullString{String: sub.Pincode, Valid: true},
		Reference:      reference,
	})
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	return &app, nil
}

// SaveDocument records one uploaded identity proof. Re-uploading a type
// replaces the earlier record and resets its verified flag.
func (a *ApplicationService) SaveDocument(ctx context.Context, applicationID uuid.UUID, documentType string, filePath string) (*db.Document, error) {
	if _, err := a.queries.GetApplicationByID(ctx, applicationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("fetch application: %w", err)
	}

	doc, err := a.queries.CreateDocument(ctx, db.CreateDocumentParams{
		ApplicationID: applicationID,
		DocumentType:  documentType,
		FilePath:      filePath,
	})
	if err != nil {
		return nil, fmt.Errorf("record document: %w", err)
	}

	return &doc, nil
}

// DocumentStatus reports the per-type upload markers and whether the full
// required set is present.
func (a *ApplicationService) DocumentStatus(ctx context.Context, applicationID uuid.UUID) (map[string]bool, bool, error) {
	docs, err := a.queries.ListDocumentsByApplication(ctx, applicationID)
	if err != nil {
		return nil, false, fmt.Errorf("list documents: %w", err)
	}

	uploaded := make(map[string]bool, len(RequiredDocumentTypes))
	for _, required := range RequiredDocumentTypes {
		uploaded[required] = false
	}
	for _, doc := range docs {
		if _, required := uploaded[doc.DocumentType]; required {
			uploaded[doc.DocumentType] = true
		}
	}

	complete := true
	for _, present := range uploaded {
		if !present {
			complete = false
			break
		}
	}

	return uploaded, complete, nil
}

// Application fetches a single application by id.
func (a *ApplicationService) Application(ctx context.Context, applicationID uuid.UUID) (*db.Application, error) {
	app, err := a.queries.GetApplicationByID(ctx, applicationID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("fetch application: %w", err)
	}
	return &app, nil
}

// RecordEligibility stores the provisionally approved limit on the
// application. Status stays pending; final adjudication is external.
func (a *ApplicationService) RecordEligibility(ctx context.Context, applicationID uuid.UUID, creditLimit int64) (*db.Application, error) {
	app, err := a.queries.SetApplicationDecision(ctx, db.SetApplicationDecisionParams{
		ID:                applicationID,
		ApplicationStatus: "pending",
		CreditLimit:       sql.NullInt64{Int64: creditLimit, Valid: true},
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("record eligibility: %w", err)
	}

	return &app, nil
}

// RecordPayment persists the completed joining-fee transaction. The unique
// constraint on the application keeps this at one current payment per
// application.
func (a *ApplicationService) RecordPayment(ctx context.Context, applicationID uuid.UUID, amountMinor int64, method string, transactionID string, status string, payload json.RawMessage) (*db.Payment, error) {
	pay, err := a.queries.CreatePayment(ctx, db.CreatePaymentParams{
		ApplicationID: applicationID,
		Amount:        amountMinor,
		PaymentMethod: sql.NullString{String: method, Valid: true},
		PaymentStatus: status,
		TransactionID: sql.NullString{String: transactionID, Valid: true},
		GatewayPayload: pqtype.NullRawMessage{
			RawMessage: payload,
			Valid:      len(payload) > 0,
		},
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == db.DuplicateEntry {
			return nil, ErrPaymentAlreadyRecorded
		}
		return nil, fmt.Errorf("record payment: %w", err)
	}

	return &pay, nil
}

type DashboardView struct {
	Profile     db.Profile
	Application db.Application
	Payment     *db.Payment
}

// Dashboard assembles the read-only aggregation view: the profile, the
// most recent application, and that application's payment if one exists.
func (a *ApplicationService) Dashboard(ctx context.Context, identityID uuid.UUID) (*DashboardView, error) {
	profile, err := a.queries.GetProfileByUserID(ctx, identityID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	app, err := a.queries.GetLatestApplicationByUserID(ctx, identityID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("fetch application: %w", err)
	}

	view := &DashboardView{
		Profile:     profile,
		Application: app,
	}

	pay, err := a.queries.GetPaymentByApplicationID(ctx, app.ID)
	if err != nil {
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("fetch payment: %w", err)
		}
	} else {
		view.Payment = &pay
	}

	return view, nil
}
