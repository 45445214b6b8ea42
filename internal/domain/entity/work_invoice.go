package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Work invoice statuses.
const (
	WorkInvoiceDraft = "draft"
	WorkInvoiceSent  = "sent"
	WorkInvoicePaid  = "paid"
	WorkInvoiceVoid  = "void"
)

// WorkInvoice bills a contractor's customer for a job.
type WorkInvoice struct {
	ID           string
	ContractorID string
	CustomerID   string
	JobID        string
	Number       string
	Date         time.Time
	Subtotal     decimal.Decimal
	TaxTotal     decimal.Decimal
	GrandTotal   decimal.Decimal
	Status       string // draft, sent, paid, void
	DocumentKey  string // storage key of the rendered PDF, empty until rendered
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkInvoiceLine is one billed line (labor or material).
type WorkInvoiceLine struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // fraction, e.g. 0.08
	Subtotal    decimal.Decimal
}
