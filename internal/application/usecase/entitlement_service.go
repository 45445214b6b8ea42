package usecase

import (
	"context"
	"fmt"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/subscription"
)

// EntitlementService answers what a contractor's subscription allows. It is
// the only place that knows how tier state maps to access.
type EntitlementService struct {
	subRepo repository.SubscriptionRepository
}

// NewEntitlementService builds the service.
func NewEntitlementService(subRepo repository.SubscriptionRepository) *EntitlementService {
	return &EntitlementService{subRepo: subRepo}
}

// CurrentTier returns the contractor's effective tier. Contractors with no
// subscription, or one that is canceled/past_due, fall back to starter:
// feature access degrades rather than locking the account out entirely.
func (s *EntitlementService) CurrentTier(ctx context.Context, contractorID string) (string, error) {
	if contractorID == "" {
		return "", fmt.Errorf("entitlement: contractorID is required")
	}
	sub, err := s.subRepo.GetCurrentByContractor(contractorID)
	if err != nil {
		return "", err
	}
	if sub == nil {
		return subscription.TierStarter, nil
	}
	switch sub.Status {
	case entity.SubscriptionActive, entity.SubscriptionTrialing:
		return sub.Tier, nil
	default:
		return subscription.TierStarter, nil
	}
}

// HasTier reports whether the contractor's tier meets required.
// Errors only on infrastructure failure (DB down, timeout).
func (s *EntitlementService) HasTier(ctx context.Context, contractorID, required string) (bool, error) {
	tier, err := s.CurrentTier(ctx, contractorID)
	if err != nil {
		return false, err
	}
	return subscription.AtLeast(tier, required), nil
}

// LimitsFor returns the quantity caps for the contractor's effective tier.
func (s *EntitlementService) LimitsFor(ctx context.Context, contractorID string) (subscription.Limits, error) {
	tier, err := s.CurrentTier(ctx, contractorID)
	if err != nil {
		return subscription.Limits{}, err
	}
	return subscription.LimitsFor(tier), nil
}
