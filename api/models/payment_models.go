package models

import "time"

type PaymentQuoteResponse struct {
	JoiningFee int64    `json:"joining_fee"`
	GST        int64    `json:"gst"`
	Total      int64    `json:"total"`
	Currency   string   `json:"currency"`
	Methods    []string `json:"methods"`
}

type ConfirmPaymentParams struct {
	Method string `json:"method" binding:"required"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}
