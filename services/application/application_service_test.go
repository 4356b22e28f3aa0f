package application_service

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	db "github.com/CreditPe/CreditPe-Backend/db/sqlc"
	"github.com/CreditPe/CreditPe-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// mockQuerier is an in-memory stand-in for the generated sqlc queries. It
// mirrors the constraints the schema enforces: unique phone per identity,
// one document row per (application, type), one payment per application.
type mockQuerier struct {
	identities   map[string]db.Identity
	profiles     map[uuid.UUID]db.Profile
	applications map[uuid.UUID]db.Application
	documents    map[uuid.UUID]map[string]db.Document
	payments     map[uuid.UUID]db.Payment
}

var _ db.Querier = (*mockQuerier)(nil)

func newMockQuerier() *mockQuerier {
	return &mockQuerier{
		identities:   make(map[string]db.Identity),
		profiles:     make(map[uuid.UUID]db.Profile),
		applications: make(map[uuid.UUID]db.Application),
		documents:    make(map[uuid.UUID]map[string]db.Document),
		payments:     make(map[uuid.UUID]db.Payment),
	}
}

func (m *mockQuerier) UpsertIdentity(_ context.Context, phone string) (db.Identity, error) {
	if existing, found := m.identities[phone]; found {
		return existing, nil
	}
	identity := db.Identity{ID: uuid.New(), Phone: phone, CreatedAt: time.Now()}
	m.identities[phone] = identity
	return identity, nil
}

func (m *mockQuerier) GetIdentityByID(_ context.Context, id uuid.UUID) (db.Identity, error) {
	for _, identity := range m.identities {
		if identity.ID == id {
			return identity, nil
		}
	}
	return db.Identity{}, sql.ErrNoRows
}

func (m *mockQuerier) GetIdentityByPhone(_ context.Context, phone string) (db.Identity, error) {
	if identity, found := m.identities[phone]; found {
		return identity, nil
	}
	return db.Identity{}, sql.ErrNoRows
}

func (m *mockQuerier) CreateProfile(_ context.Context, arg db.CreateProfileParams) (db.Profile, error) {
	if existing, found := m.profiles[arg.UserID]; found {
		return existing, nil
	}
	profile := db.Profile{ID: uuid.New(), UserID: arg.UserID, Phone: arg.Phone, CreatedAt: time.Now()}
	m.profiles[arg.UserID] = profile
	return profile, nil
}

func (m *mockQuerier) GetProfileByUserID(_ context.Context, userID uuid.UUID) (db.Profile, error) {
	if profile, found := m.profiles[userID]; found {
		return profile, nil
	}
	return db.Profile{}, sql.ErrNoRows
}

func (m *mockQuerier) UpdateProfile(_ context.Context, arg db.UpdateProfileParams) (db.Profile, error) {
	profile, found := m.profiles[arg.UserID]
	if !found {
		return db.Profile{}, sql.ErrNoRows
	}
	profile.FullName = arg.FullName
	profile.Email = arg.Email
	profile.DateOfBirth = arg.DateOfBirth
	profile.Gender = arg.Gender
	profile.UpdatedAt = time.Now()
	m.profiles[arg.UserID] = profile
	return profile, nil
}

func (m *mockQuerier) CreateApplication(_ context.Context, arg db.CreateApplicationParams) (db.Application, error) {
	app := db.Application{
		ID:                uuid.New(),
		UserID:            arg.UserID,
		EmploymentType:    arg.EmploymentType,
		MonthlyIncome:     arg.MonthlyIncome,
		AadhaarNumber:     arg.AadhaarNumber,
		PanNumber:         arg.PanNumber,
		AddressLine1:      arg.AddressLine1,
		AddressLine2:      arg.AddressLine2,
		City:              arg.City,
		State:             arg.State,
		Pincode:           arg.Pincode,
		ApplicationStatus: "pending",
		Reference:         arg.Reference,
		CreatedAt:         time.Now(),
	}
	m.applications[app.ID] = app
	return app, nil
}

func (m *mockQuerier) GetApplicationByID(_ context.Context, id uuid.UUID) (db.Application, error) {
	if app, found := m.applications[id]; found {
		return app, nil
	}
	return db.Application{}, sql.ErrNoRows
}

func (m *mockQuerier) GetLatestApplicationByUserID(_ context.Context, userID uuid.UUID) (db.Application, error) {
	var latest db.Application
	found := false
	for _, app := range m.applications {
		if app.UserID != userID {
			continue
		}
		if !found || app.CreatedAt.After(latest.CreatedAt) {
			latest = app
			found = true
		}
	}
	if !found {
		return db.Application{}, sql.ErrNoRows
	}
	return latest, nil
}

func (m *mockQuerier) SetApplicationDecision(_ context.Context, arg db.SetApplicationDecisionParams) (db.Application, error) {
	app, found := m.applications[arg.ID]
	if !found {
		return db.Application{}, sql.ErrNoRows
	}
	app.ApplicationStatus = arg.ApplicationStatus
	app.CreditLimit = arg.CreditLimit
	m.applications[arg.ID] = app
	return app, nil
}

func (m *mockQuerier) CreateDocument(_ context.Context, arg db.CreateDocumentParams) (db.Document, error) {
	byType, found := m.documents[arg.ApplicationID]
	if !found {
		byType = make(map[string]db.Document)
		m.documents[arg.ApplicationID] = byType
	}

	doc, exists := byType[arg.DocumentType]
	if !exists {
		doc = db.Document{ID: uuid.New(), ApplicationID: arg.ApplicationID, DocumentType: arg.DocumentType}
	}
	doc.FilePath = arg.FilePath
	doc.Verified = false
	doc.CreatedAt = time.Now()
	byType[arg.DocumentType] = doc
	return doc, nil
}

func (m *mockQuerier) ListDocumentsByApplication(_ context.Context, applicationID uuid.UUID) ([]db.Document, error) {
	var docs []db.Document
	for _, doc := range m.documents[applicationID] {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *mockQuerier) CreatePayment(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
	if _, found := m.payments[arg.ApplicationID]; found {
		return db.Payment{}, &pq.Error{Code: db.DuplicateEntry}
	}
	pay := db.Payment{
		ID:             uuid.New(),
		ApplicationID:  arg.ApplicationID,
		Amount:         arg.Amount,
		PaymentMethod:  arg.PaymentMethod,
		PaymentStatus:  arg.PaymentStatus,
		TransactionID:  arg.TransactionID,
		GatewayPayload: arg.GatewayPayload,
		CreatedAt:      time.Now(),
	}
	m.payments[arg.ApplicationID] = pay
	return pay, nil
}

func (m *mockQuerier) GetPaymentByApplicationID(_ context.Context, applicationID uuid.UUID) (db.Payment, error) {
	if pay, found := m.payments[applicationID]; found {
		return pay, nil
	}
	return db.Payment{}, sql.ErrNoRows
}

func newTestService() (*ApplicationService, *mockQuerier) {
	queries := newMockQuerier()
	logger := &logging.Logger{Logger: logrus.New()}
	return NewApplicationService(queries, logger), queries
}

func testSubmission() KYCSubmission {
	return KYCSubmission{
		FullName:       "Priya Sharma",
		Email:          "priya@example.com",
		DateOfBirth:    time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:         "female",
		EmploymentType: "salaried",
		MonthlyIncome:  85000,
		AadhaarNumber:  "123412341234",
		PanNumber:      "abcde1234f",
		AddressLine1:   "14 MG Road",
		City:           "Bengaluru",
		State:          "Karnataka",
		Pincode:        "560001",
	}
}

func TestRegisterIdentityIsIdempotent(t *testing.T) {
	svc, queries := newTestService()
	ctx := context.Background()

	first, err := svc.RegisterIdentity(ctx, "+919876543210")
	if err != nil {
		t.Fatalf("RegisterIdentity returned error: %v", err)
	}

	second, err := svc.RegisterIdentity(ctx, "+919876543210")
	if err != nil {
		t.Fatalf("repeat RegisterIdentity returned error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("repeat registration minted a new identity: %v vs %v", first.ID, second.ID)
	}

	if _, found := queries.profiles[first.ID]; !found {
		t.Error("RegisterIdentity did not create a profile")
	}
}

func TestSubmitKYC(t *testing.T) {
	svc, queries := newTestService()
	ctx := context.Background()

	identity, err := svc.RegisterIdentity(ctx, "+919876543210")
	if err != nil {
		t.Fatal(err)
	}

	app, err := svc.SubmitKYC(ctx, identity.ID, testSubmission())
	if err != nil {
		t.Fatalf("SubmitKYC returned error: %v", err)
	}

	if app.PanNumber.String != "ABCDE1234F" {
		t.Errorf("PAN = %q, want uppercased ABCDE1234F", app.PanNumber.String)
	}
	if !strings.HasPrefix(app.Reference, "APP") {
		t.Errorf("application reference %q missing APP prefix", app.Reference)
	}
	if app.ApplicationStatus != "pending" {
		t.Errorf("new application status = %q, want pending", app.ApplicationStatus)
	}

	profile := queries.profiles[identity.ID]
	if profile.FullName.String != "Priya Sharma" {
		t.Errorf("profile name = %q, want Priya Sharma", profile.FullName.String)
	}
	if !profile.DateOfBirth.Valid {
		t.Error("profile date of birth not set")
	}
}

func TestSubmitKYCUnknownIdentity(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitKYC(context.Background(), uuid.New(), testSubmission())
	if err != ErrProfileNotFound {
		t.Errorf("SubmitKYC for unknown identity: err = %v, want ErrProfileNotFound", err)
	}
}

func TestSaveDocumentRequiresApplication(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SaveDocument(context.Background(), uuid.New(), "aadhaar", "x/aadhaar.jpg")
	if err != ErrApplicationNotFound {
		t.Errorf("SaveDocument without application: err = %v, want ErrApplicationNotFound", err)
	}
}

func TestDocumentStatusGating(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	identity, err := svc.RegisterIdentity(ctx, "+919876543210")
	if err != nil {
		t.Fatal(err)
	}
	app, err := svc.SubmitKYC(ctx, identity.ID, testSubmission())
	if err != nil {
		t.Fatal(err)
	}

	_, complete, err := svc.DocumentStatus(ctx, app.ID)
	if err != nil {
		t.Fatalf("DocumentStatus returned error: %v", err)
	}
	if complete {
		t.Error("status complete before any upload")
	}

	if _, err := svc.SaveDocument(ctx, app.ID, "aadhaar", "k/aadhaar.jpg"); err != nil {
		t.Fatal(err)
	}

	uploaded, complete, err := svc.DocumentStatus(ctx, app.ID)
	if err != nil {
		t.Fatal(err)
	}
	if complete {
		t.Error("status complete with only one of two documents")
	}
	if !uploaded["aadhaar"] || uploaded["pan"] {
		t.Errorf("uploaded markers wrong: %v", uploaded)
	}

	if _, err := svc.SaveDocument(ctx, app.ID, "pan", "k/pan.jpg"); err != nil {
		t.Fatal(err)
	}

	_, complete, err = svc.DocumentStatus(ctx, app.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !complete {
		t.Error("status incomplete with both documents uploaded")
	}
}

func TestSaveDocumentReplacesEarlierUpload(t *testing.T) {
	svc, queries := newTestService()
	ctx := context.Background()

	identity, _ := svc.RegisterIdentity(ctx, "+919876543210")
	app, err := svc.SubmitKYC(ctx, identity.ID, testSubmission())
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.SaveDocument(ctx, app.ID, "pan", "k/pan_1.jpg")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.SaveDocument(ctx, app.ID, "pan", "k/pan_2.jpg")
	if err != nil {
		t.Fatal(err)
	}

	if first.ID != second.ID {
		t.Error("re-upload created a second row instead of replacing")
	}
	if second.FilePath != "k/pan_2.jpg" {
		t.Errorf("re-upload kept old path %q", second.FilePath)
	}
	if len(queries.documents[app.ID]) != 1 {
		t.Errorf("application holds %d pan rows, want 1", len(queries.documents[app.ID]))
	}
}

func TestRecordEligibility(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	identity, _ := svc.RegisterIdentity(ctx, "+919876543210")
	app, err := svc.SubmitKYC(ctx, identity.ID, testSubmission())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.RecordEligibility(ctx, app.ID, 300000)
	if err != nil {
		t.Fatalf("RecordEligibility returned error: %v", err)
	}
	if !updated.CreditLimit.Valid || updated.CreditLimit.Int64 != 300000 {
		t.Errorf("credit limit = %+v, want 300000", updated.CreditLimit)
	}

	if _, err := svc.RecordEligibility(ctx, uuid.New(), 300000); err != ErrApplicationNotFound {
		t.Errorf("RecordEligibility for unknown application: err = %v, want ErrApplicationNotFound", err)
	}
}

func TestRecordPaymentOncePerApplication(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	identity, _ := svc.RegisterIdentity(ctx, "+919876543210")
	app, err := svc.SubmitKYC(ctx, identity.ID, testSubmission())
	if err != nil {
		t.Fatal(err)
	}

	payload := json.RawMessage(`{"gateway":"stub"}`)
	pay, err := svc.RecordPayment(ctx, app.ID, 94300, "upi", "TXNABC", "completed", payload)
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	if pay.Amount != 94300 {
		t.Errorf("payment amount = %d, want 94300", pay.Amount)
	}
	if !pay.GatewayPayload.Valid {
		t.Error("gateway payload not stored")
	}

	_, err = svc.RecordPayment(ctx, app.ID, 94300, "card", "TXNDEF", "completed", payload)
	if err != ErrPaymentAlreadyRecorded {
		t.Errorf("second RecordPayment: err = %v, want ErrPaymentAlreadyRecorded", err)
	}
}

func TestDashboard(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	identity, _ := svc.RegisterIdentity(ctx, "+919876543210")
	app, err := svc.SubmitKYC(ctx, identity.ID, testSubmission())
	if err != nil {
		t.Fatal(err)
	}

	view, err := svc.Dashboard(ctx, identity.ID)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if view.Application.ID != app.ID {
		t.Errorf("dashboard application = %v, want %v", view.Application.ID, app.ID)
	}
	if view.Payment != nil {
		t.Error("dashboard shows a payment before one was made")
	}

	if _, err := svc.RecordPayment(ctx, app.ID, 94300, "upi", "TXNABC", "completed", nil); err != nil {
		t.Fatal(err)
	}

	view, err = svc.Dashboard(ctx, identity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if view.Payment == nil {
		t.Fatal("dashboard missing payment after it was recorded")
	}
	if view.Payment.TransactionID.String != "TXNABC" {
		t.Errorf("payment transaction = %q, want TXNABC", view.Payment.TransactionID.String)
	}
}

func TestDashboardUnknownIdentity(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Dashboard(context.Background(), uuid.New())
	if err != ErrProfileNotFound {
		t.Errorf("Dashboard for unknown identity: err = %v, want ErrProfileNotFound", err)
	}
}
