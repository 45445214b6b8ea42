package repository

import (
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

// SubscriptionRepository is the persistence port for contractor subscriptions.
type SubscriptionRepository interface {
	Create(sub *entity.Subscription) error
	GetByID(id string) (*entity.Subscription, error)
	// GetCurrentByContractor returns the most recent non-canceled subscription,
	// nil when the contractor has never subscribed.
	GetCurrentByContractor(contractorID string) (*entity.Subscription, error)
	GetByProviderRef(providerSubscripID string) (*entity.Subscription, error)
	// ListEndingBefore feeds the period sweep that flags past_due renewals.
	ListEndingBefore(cutoff time.Time) ([]*entity.Subscription, error)
	Update(sub *entity.Subscription) error
}
