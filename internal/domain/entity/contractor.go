package entity

import "time"

// License verification statuses. not_found means the state registry has no
// record for the number; the rest mirror the registry's own lifecycle.
const (
	LicenseNotFound  = "not_found"
	LicensePending   = "pending"
	LicenseActive    = "active"
	LicenseExpired   = "expired"
	LicenseSuspended = "suspended"
)

// ContractorProfile is a contractor account's business profile.
type ContractorProfile struct {
	ID               string
	AccountID        string
	BusinessName     string
	Trade            string // plumbing, electrical, hvac, general
	LicenseNumber    string
	LicenseState     string
	LicenseStatus    string // see License* constants
	LicenseExpiresAt *time.Time
	LicenseCheckedAt *time.Time
	RatingAvg        float64 // aggregate of reviews, 0 when unreviewed
	RatingCount      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
