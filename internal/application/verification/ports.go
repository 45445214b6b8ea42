package verification

import (
	"context"
	"encoding/json"
	"time"
)

// ObjectStore persists uploaded files (S3).
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// DocumentExtractor is the OCR/extraction provider port. Submission is
// asynchronous; results arrive on the provider webhook.
type DocumentExtractor interface {
	SubmitDocument(ctx context.Context, kind string, body []byte, contentType string) (providerRef string, err error)
}

// ScreeningCandidate identifies the person a background check is ordered for.
type ScreeningCandidate struct {
	ApplicationID string
	Name          string
	Email         string
}

// BackgroundChecker is the tenant-screening provider port.
type BackgroundChecker interface {
	OrderReport(ctx context.Context, candidate ScreeningCandidate) (providerRef string, err error)
}

// IdentityVerifier is the identity-verification provider port. The returned
// session URL hosts the provider's document-capture flow.
type IdentityVerifier interface {
	CreateSession(ctx context.Context, accountID, name, email string) (providerRef, sessionURL string, err error)
}

// LicenseRecord is a state registry's answer for a license number.
type LicenseRecord struct {
	Found     bool
	Status    string // registry status, mapped onto License* constants
	ExpiresAt *time.Time
}

// LicenseRegistry is the state contractor-license registry port.
type LicenseRegistry interface {
	Lookup(ctx context.Context, state, licenseNumber string) (*LicenseRecord, error)
}

// ExtractionEvent is a decoded OCR provider callback.
type ExtractionEvent struct {
	ProviderRef string
	Succeeded   bool
	Fields      json.RawMessage
}
