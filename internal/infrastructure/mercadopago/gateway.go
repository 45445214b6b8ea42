package mercadopago

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
)

var _ payments.Gateway = (*Gateway)(nil)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Gateway implements the payment port with the Mercado Pago SDK.
type Gateway struct {
	client payment.Client
}

func NewGateway(accessToken string) (*Gateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &Gateway{client: payment.NewClient(cfg)}, nil
}

// CreateCharge creates a one-off payment. The full provider response is
// returned raw so callers can persist it for audit.
func (g *Gateway) CreateCharge(ctx context.Context, req payments.ChargeRequest) (*payments.ChargeResult, error) {
	amount, _ := req.Amount.Float64()
	request := payment.Request{
		TransactionAmount: amount,
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		PaymentMethodID:   req.PaymentMethodID,
		Token:             req.CardToken,
		Installments:      1,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	}

	resource, err := g.client.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("mercadopago create payment: %w", err)
	}

	raw, err := json.Marshal(resource)
	if err != nil {
		return nil, fmt.Errorf("mercadopago marshal response: %w", err)
	}

	return &payments.ChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resource.ID),
		ProviderStatus:    resource.Status,
		RawResponse:       raw,
	}, nil
}
