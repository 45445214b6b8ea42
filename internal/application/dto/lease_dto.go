package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseResponse is the API view of a lease.
type LeaseResponse struct {
	ID            string          `json:"id"`
	UnitID        string          `json:"unit_id"`
	TenantID      string          `json:"tenant_id"`
	ApplicationID string          `json:"application_id,omitempty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Rent          decimal.Decimal `json:"rent"`
	Deposit       decimal.Decimal `json:"deposit"`
	Status        string          `json:"status"`
	Signature     *SignatureInfo  `json:"signature,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SignatureInfo is the envelope state attached to a lease response.
type SignatureInfo struct {
	EnvelopeID string     `json:"envelope_id"`
	Status     string     `json:"status"`
	SignedAt   *time.Time `json:"signed_at,omitempty"`
}
