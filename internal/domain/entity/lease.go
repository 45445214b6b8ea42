package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease statuses. draft -> sent (out for signature) -> active -> ended;
// terminated is an early exit from active.
const (
	LeaseDraft      = "draft"
	LeaseSent       = "sent"
	LeaseActive     = "active"
	LeaseEnded      = "ended"
	LeaseTerminated = "terminated"
)

// Lease binds a tenant to a unit for a period at an agreed rent.
type Lease struct {
	ID            string
	UnitID        string
	LandlordID    string
	TenantID      string
	ApplicationID string // the approved application that produced this lease
	StartDate     time.Time
	EndDate       time.Time
	Rent          decimal.Decimal
	Deposit       decimal.Decimal
	Status        string // draft, sent, active, ended, terminated
	DocumentKey   string // storage key of the rendered agreement PDF
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Signature request statuses advanced by e-signature provider callbacks.
const (
	SignatureSent     = "sent"
	SignatureViewed   = "viewed"
	SignatureSigned   = "signed"
	SignatureDeclined = "declined"
)

// LeaseSignature tracks one e-signature envelope for a lease.
type LeaseSignature struct {
	ID         string
	LeaseID    string
	EnvelopeID string // provider envelope reference
	Status     string // sent, viewed, signed, declined
	SignedAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
