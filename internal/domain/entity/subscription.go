package entity

import "time"

// Subscription statuses advanced by payment provider webhooks.
const (
	SubscriptionTrialing = "trialing"
	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Subscription is a contractor's paid plan. Tier values live in the
// subscription domain package (ordered enum with limits).
type Subscription struct {
	ID                 string
	ContractorID       string
	Tier               string // starter, pro, enterprise
	Status             string // trialing, active, past_due, canceled
	PeriodStart        time.Time
	PeriodEnd          time.Time
	ProviderSubscripID string
	CanceledAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
