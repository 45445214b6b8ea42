package dto

import "time"

// SubscribeRequest starts or changes a contractor subscription.
type SubscribeRequest struct {
	Tier            string `json:"tier"` // starter, pro, enterprise
	PaymentMethodID string `json:"payment_method_id"`
	CardToken       string `json:"card_token,omitempty"`
}

// SubscriptionResponse is the API view of a subscription.
type SubscriptionResponse struct {
	ID          string     `json:"id"`
	Tier        string     `json:"tier"`
	Status      string     `json:"status"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}
