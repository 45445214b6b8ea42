package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Rent invoice statuses. processing covers the window between checkout
// creation and the provider webhook.
const (
	RentInvoiceOpen       = "open"
	RentInvoiceProcessing = "processing"
	RentInvoicePaid       = "paid"
	RentInvoiceFailed     = "failed"
	RentInvoiceVoid       = "void"
)

// RentInvoice is one month of rent owed under a lease.
// Period is "YYYY-MM"; one invoice per lease per period.
type RentInvoice struct {
	ID                string
	LeaseID           string
	Period            string // "2026-03"
	Amount            decimal.Decimal
	DueDate           time.Time
	Status            string // open, processing, paid, failed, void
	ProviderPaymentID string
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Payment records one attempt against a rent invoice, including the raw
// provider payload for audit.
type Payment struct {
	ID                string
	RentInvoiceID     string
	ProviderPaymentID string
	ProviderStatus    string
	Amount            decimal.Decimal
	RawPayload        json.RawMessage
	CreatedAt         time.Time
}
