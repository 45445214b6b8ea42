package payments

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ChargeRequest is a one-off charge sent to the payment provider.
type ChargeRequest struct {
	Amount            decimal.Decimal
	Description       string
	ExternalReference string // rent invoice or subscription id
	PaymentMethodID   string
	CardToken         string
	PayerEmail        string
}

// ChargeResult carries the provider's answer, raw payload included for audit.
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	RawResponse       json.RawMessage
}

// Gateway abstracts the external payment provider (Mercado Pago).
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// Provider statuses as reported by Mercado Pago.
const (
	ProviderApproved  = "approved"
	ProviderPending   = "pending"
	ProviderInProcess = "in_process"
	ProviderRejected  = "rejected"
	ProviderCancelled = "cancelled"
	ProviderRefunded  = "refunded"
)
