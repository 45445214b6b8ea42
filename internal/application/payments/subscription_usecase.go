package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/subscription"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// Monthly plan prices. Starter is free; paid tiers are charged through the
// payment provider at subscribe time and on each renewal.
var tierPrices = map[string]decimal.Decimal{
	subscription.TierStarter:    decimal.Zero,
	subscription.TierPro:        decimal.NewFromFloat(49.90),
	subscription.TierEnterprise: decimal.NewFromFloat(199.90),
}

// SubscriptionUseCase manages contractor plans: subscribe, change tier,
// cancel, and webhook-driven status changes.
type SubscriptionUseCase struct {
	subRepo     repository.SubscriptionRepository
	accountRepo repository.AccountRepository
	gateway     Gateway
	log         *logger.Logger
}

func NewSubscriptionUseCase(
	subRepo repository.SubscriptionRepository,
	accountRepo repository.AccountRepository,
	gateway Gateway,
	log *logger.Logger,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		subRepo:     subRepo,
		accountRepo: accountRepo,
		gateway:     gateway,
		log:         log,
	}
}

// Current returns the contractor's subscription, or ErrNotFound when they
// have never subscribed (callers treat that as the free starter tier).
func (uc *SubscriptionUseCase) Current(contractorID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subRepo.GetCurrentByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(sub), nil
}

// Subscribe starts a plan or changes the tier of the current one. Paid
// tiers are charged immediately; the new period starts on success.
func (uc *SubscriptionUseCase) Subscribe(ctx context.Context, contractorID string, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	tier := req.Tier
	if !subscription.Valid(tier) {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.subRepo.GetCurrentByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Tier == tier && current.Status != entity.SubscriptionCanceled {
		return nil, domain.ErrConflict
	}

	price := tierPrices[tier]
	now := time.Now()

	var providerRef string
	status := entity.SubscriptionActive
	if price.GreaterThan(decimal.Zero) {
		account, err := uc.accountRepo.GetByID(contractorID)
		if err != nil || account == nil {
			return nil, domain.ErrNotFound
		}
		result, err := uc.gateway.CreateCharge(ctx, ChargeRequest{
			Amount:            price,
			Description:       fmt.Sprintf("Subscription %s", tier),
			ExternalReference: contractorID,
			PaymentMethodID:   req.PaymentMethodID,
			CardToken:         req.CardToken,
			PayerEmail:        account.Email,
		})
		if err != nil {
			return nil, fmt.Errorf("charge subscription: %w", err)
		}
		providerRef = result.ProviderPaymentID
		status = subscriptionStatusFor(result.ProviderStatus)
	}

	// Changing tier supersedes the old row rather than mutating it, so the
	// billing history stays inspectable.
	if current != nil && current.Status != entity.SubscriptionCanceled {
		current.Status = entity.SubscriptionCanceled
		current.CanceledAt = &now
		current.UpdatedAt = now
		if err := uc.subRepo.Update(current); err != nil {
			return nil, err
		}
	}

	sub := &entity.Subscription{
		ID:                 uuid.New().String(),
		ContractorID:       contractorID,
		Tier:               tier,
		Status:             status,
		PeriodStart:        now,
		PeriodEnd:          now.AddDate(0, 1, 0),
		ProviderSubscripID: providerRef,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.subRepo.Create(sub); err != nil {
		return nil, err
	}
	return toSubscriptionResponse(sub), nil
}

// Cancel ends the contractor's current subscription. Entitlements drop to
// starter right away.
func (uc *SubscriptionUseCase) Cancel(contractorID string) error {
	sub, err := uc.subRepo.GetCurrentByContractor(contractorID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	if sub.Status == entity.SubscriptionCanceled {
		return domain.ErrConflict
	}
	now := time.Now()
	sub.Status = entity.SubscriptionCanceled
	sub.CanceledAt = &now
	sub.UpdatedAt = now
	return uc.subRepo.Update(sub)
}

// HandleProviderEvent advances a subscription from a provider webhook.
// Approved renewals extend the period; rejections flag past_due.
func (uc *SubscriptionUseCase) HandleProviderEvent(providerRef, providerStatus string) error {
	sub, err := uc.subRepo.GetByProviderRef(providerRef)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	if sub.Status == entity.SubscriptionCanceled {
		return nil // terminal; late events change nothing
	}

	next := subscriptionStatusFor(providerStatus)
	now := time.Now()
	if next == entity.SubscriptionActive && sub.Status != entity.SubscriptionActive {
		sub.PeriodStart = now
		sub.PeriodEnd = now.AddDate(0, 1, 0)
	}
	if next == sub.Status {
		return nil
	}
	sub.Status = next
	if next == entity.SubscriptionCanceled {
		sub.CanceledAt = &now
	}
	sub.UpdatedAt = now
	return uc.subRepo.Update(sub)
}

// SweepExpired flags subscriptions whose period lapsed without a renewal
// event. Called from the scheduler.
func (uc *SubscriptionUseCase) SweepExpired(now time.Time) error {
	subs, err := uc.subRepo.ListEndingBefore(now)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if sub.Status != entity.SubscriptionActive && sub.Status != entity.SubscriptionTrialing {
			continue
		}
		sub.Status = entity.SubscriptionPastDue
		sub.UpdatedAt = now
		if err := uc.subRepo.Update(sub); err != nil {
			uc.log.Error().Err(err).Str("subscription", sub.ID).Msg("flag past_due failed")
		}
	}
	return nil
}

func subscriptionStatusFor(providerStatus string) string {
	switch providerStatus {
	case ProviderApproved:
		return entity.SubscriptionActive
	case ProviderRejected:
		return entity.SubscriptionPastDue
	case ProviderCancelled, ProviderRefunded:
		return entity.SubscriptionCanceled
	default:
		return entity.SubscriptionTrialing
	}
}

func toSubscriptionResponse(sub *entity.Subscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:          sub.ID,
		Tier:        sub.Tier,
		Status:      sub.Status,
		PeriodStart: sub.PeriodStart,
		PeriodEnd:   sub.PeriodEnd,
		CanceledAt:  sub.CanceledAt,
	}
}
