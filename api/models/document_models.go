package models

import "time"

type DocumentResponse struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	FilePath     string    `json:"file_path"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type DocumentStatusResponse struct {
	Uploaded map[string]bool `json:"uploaded"`
	Complete bool            `json:"complete"`
}
