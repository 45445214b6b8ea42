package entity

import (
	"encoding/json"
	"time"
)

// Verification document kinds.
const (
	DocumentKindID        = "id"
	DocumentKindIncome    = "income"
	DocumentKindInsurance = "insurance"
	DocumentKindLicense   = "license"
)

// Verification document statuses. uploaded -> processing (sent to the OCR
// provider) -> extracted or failed.
const (
	DocumentUploaded   = "uploaded"
	DocumentProcessing = "processing"
	DocumentExtracted  = "extracted"
	DocumentFailed     = "failed"
)

// VerificationDocument is an uploaded file run through the OCR/extraction
// provider to populate identity or income fields.
type VerificationDocument struct {
	ID          string
	OwnerID     string // account that uploaded it
	Kind        string // id, income, insurance, license
	FileName    string
	StorageKey  string // S3 object key
	ContentType string
	Status      string // uploaded, processing, extracted, failed
	ProviderRef string // OCR provider job reference
	Extracted   json.RawMessage // provider-extracted fields
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
