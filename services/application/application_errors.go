package application_service

import "fmt"

var (
	ErrProfileNotFound        = fmt.Errorf("profile not found")
	ErrApplicationNotFound    = fmt.Errorf("application not found")
	ErrNoCurrentApplication   = fmt.Errorf("no application has been submitted in this session")
	ErrDocumentsIncomplete    = fmt.Errorf("required documents have not all been uploaded")
	ErrPaymentAlreadyRecorded = fmt.Errorf("a payment already exists for this application")
	ErrPaymentNotFound        = fmt.Errorf("payment not found")
)
