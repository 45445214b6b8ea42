package dto

import (
	"encoding/json"
	"time"
)

// UploadDocumentRequest registers an uploaded verification document.
// The file body travels as multipart form data; these are the form fields.
type UploadDocumentRequest struct {
	Kind     string `form:"kind"` // id, income, insurance, license
	FileName string `form:"file_name"`
}

// DocumentResponse is the API view of a verification document.
type DocumentResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	FileName    string          `json:"file_name"`
	Status      string          `json:"status"`
	Extracted   json.RawMessage `json:"extracted,omitempty"`
	DownloadURL string          `json:"download_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ScreeningReportResponse is the API view of a background check.
type ScreeningReportResponse struct {
	ID            string     `json:"id"`
	ApplicationID string     `json:"application_id"`
	Status        string     `json:"status"`
	Summary       string     `json:"summary,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// IdentityVerificationResponse is the API view of an identity session.
type IdentityVerificationResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	SessionURL  string     `json:"session_url,omitempty"` // provider-hosted flow
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
