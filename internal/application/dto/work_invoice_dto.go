package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkInvoiceRequest bills a customer for a job.
type CreateWorkInvoiceRequest struct {
	CustomerID string                   `json:"customer_id"`
	JobID      string                   `json:"job_id,omitempty"`
	Number     string                   `json:"number,omitempty"` // autonumbered when empty
	Lines      []WorkInvoiceLineRequest `json:"lines"`
}

// WorkInvoiceLineRequest is one billed line.
type WorkInvoiceLineRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"` // fraction or percent; normalized server-side
}

// WorkInvoiceResponse is the API view of a work invoice.
type WorkInvoiceResponse struct {
	ID         string                    `json:"id"`
	CustomerID string                    `json:"customer_id"`
	JobID      string                    `json:"job_id,omitempty"`
	Number     string                    `json:"number"`
	Date       time.Time                 `json:"date"`
	Subtotal   decimal.Decimal           `json:"subtotal"`
	TaxTotal   decimal.Decimal           `json:"tax_total"`
	GrandTotal decimal.Decimal           `json:"grand_total"`
	Status     string                    `json:"status"`
	Lines      []WorkInvoiceLineResponse `json:"lines,omitempty"`
}

// WorkInvoiceLineResponse is one line in a response.
type WorkInvoiceLineResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
