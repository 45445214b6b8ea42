package entity

import "time"

// Screening report statuses. clear/consider are the provider's adjudication
// outcomes; failed means the provider could not complete the check.
const (
	ScreeningPending  = "pending"
	ScreeningClear    = "clear"
	ScreeningConsider = "consider"
	ScreeningFailed   = "failed"
)

// ScreeningReport is one background check ordered for an application.
type ScreeningReport struct {
	ID            string
	ApplicationID string
	ProviderRef   string
	Status        string // pending, clear, consider, failed
	Summary       string
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Identity verification statuses.
const (
	IdentityPending  = "pending"
	IdentityVerified = "verified"
	IdentityFailed   = "failed"
)

// IdentityVerification is one identity-provider session for an account.
type IdentityVerification struct {
	ID          string
	AccountID   string
	ProviderRef string
	Status      string // pending, verified, failed
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
