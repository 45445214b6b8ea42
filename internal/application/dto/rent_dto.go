package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentInvoiceResponse is the API view of a rent invoice.
type RentInvoiceResponse struct {
	ID      string          `json:"id"`
	LeaseID string          `json:"lease_id"`
	Period  string          `json:"period"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
	Status  string          `json:"status"`
	PaidAt  *time.Time      `json:"paid_at,omitempty"`
}

// PayInvoiceRequest starts a provider checkout for an open invoice.
type PayInvoiceRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
	CardToken       string `json:"card_token,omitempty"`
}

// CheckoutResponse reports the provider payment created for an invoice.
type CheckoutResponse struct {
	InvoiceID         string `json:"invoice_id"`
	ProviderPaymentID string `json:"provider_payment_id"`
	ProviderStatus    string `json:"provider_status"`
	InvoiceStatus     string `json:"invoice_status"`
}
