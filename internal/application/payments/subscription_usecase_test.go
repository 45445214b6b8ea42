package payments_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/subscription"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

type fakeSubRepo struct {
	repository.SubscriptionRepository
	current *entity.Subscription
	created []*entity.Subscription
	updated []*entity.Subscription
}

func (f *fakeSubRepo) GetCurrentByContractor(string) (*entity.Subscription, error) {
	return f.current, nil
}

func (f *fakeSubRepo) GetByProviderRef(ref string) (*entity.Subscription, error) {
	if f.current != nil && f.current.ProviderSubscripID == ref {
		return f.current, nil
	}
	return nil, nil
}

func (f *fakeSubRepo) Create(s *entity.Subscription) error {
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubRepo) Update(s *entity.Subscription) error {
	f.updated = append(f.updated, s)
	return nil
}

func newSubFixture(current *entity.Subscription, gw *fakeGateway) (*payments.SubscriptionUseCase, *fakeSubRepo) {
	subs := &fakeSubRepo{current: current}
	accounts := &fakeAccountRepo{account: &entity.Account{
		ID:    "contractor-1",
		Email: "pro@example.com",
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return payments.NewSubscriptionUseCase(subs, accounts, gw, log), subs
}

func activeSubscription(tier string) *entity.Subscription {
	now := time.Now()
	return &entity.Subscription{
		ID:                 "sub-1",
		ContractorID:       "contractor-1",
		Tier:               tier,
		Status:             entity.SubscriptionActive,
		PeriodStart:        now.AddDate(0, 0, -10),
		PeriodEnd:          now.AddDate(0, 0, 20),
		ProviderSubscripID: "mp-sub-1",
		CreatedAt:          now.AddDate(0, 0, -10),
		UpdatedAt:          now.AddDate(0, 0, -10),
	}
}

func TestSubscribe_StarterIsFree(t *testing.T) {
	gw := &fakeGateway{}
	uc, subs := newSubFixture(nil, gw)

	resp, err := uc.Subscribe(context.Background(), "contractor-1", &dto.SubscribeRequest{
		Tier: subscription.TierStarter,
	})
	require.NoError(t, err)

	assert.Zero(t, gw.calls, "free tier must not hit the payment provider")
	assert.Equal(t, subscription.TierStarter, resp.Tier)
	assert.Equal(t, entity.SubscriptionActive, resp.Status)
	require.Len(t, subs.created, 1)
	assert.Empty(t, subs.created[0].ProviderSubscripID)
}

func TestSubscribe_PaidTierChargesProvider(t *testing.T) {
	gw := &fakeGateway{result: &payments.ChargeResult{
		ProviderPaymentID: "mp-charge-9",
		ProviderStatus:    payments.ProviderApproved,
	}}
	uc, subs := newSubFixture(nil, gw)

	resp, err := uc.Subscribe(context.Background(), "contractor-1", &dto.SubscribeRequest{
		Tier:            subscription.TierPro,
		PaymentMethodID: "visa",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, subscription.TierPro, resp.Tier)
	assert.Equal(t, entity.SubscriptionActive, resp.Status)
	require.Len(t, subs.created, 1)
	assert.Equal(t, "mp-charge-9", subs.created[0].ProviderSubscripID)
}

func TestSubscribe_UnknownTierRejected(t *testing.T) {
	gw := &fakeGateway{}
	uc, subs := newSubFixture(nil, gw)

	_, err := uc.Subscribe(context.Background(), "contractor-1", &dto.SubscribeRequest{
		Tier: "platinum",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, gw.calls)
	assert.Empty(t, subs.created)
}

func TestSubscribe_SameTierConflicts(t *testing.T) {
	gw := &fakeGateway{}
	uc, _ := newSubFixture(activeSubscription(subscription.TierPro), gw)

	_, err := uc.Subscribe(context.Background(), "contractor-1", &dto.SubscribeRequest{
		Tier:            subscription.TierPro,
		PaymentMethodID: "visa",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, gw.calls)
}

func TestSubscribe_UpgradeSupersedesCurrentPlan(t *testing.T) {
	gw := &fakeGateway{result: &payments.ChargeResult{
		ProviderPaymentID: "mp-charge-10",
		ProviderStatus:    payments.ProviderApproved,
	}}
	current := activeSubscription(subscription.TierStarter)
	uc, subs := newSubFixture(current, gw)

	resp, err := uc.Subscribe(context.Background(), "contractor-1", &dto.SubscribeRequest{
		Tier:            subscription.TierPro,
		PaymentMethodID: "visa",
	})
	require.NoError(t, err)

	require.Len(t, subs.updated, 1)
	assert.Equal(t, entity.SubscriptionCanceled, subs.updated[0].Status)
	assert.NotNil(t, subs.updated[0].CanceledAt)
	require.Len(t, subs.created, 1)
	assert.Equal(t, subscription.TierPro, resp.Tier)
}

func TestCancel_EndsCurrentPlan(t *testing.T) {
	uc, subs := newSubFixture(activeSubscription(subscription.TierPro), &fakeGateway{})

	require.NoError(t, uc.Cancel("contractor-1"))
	require.Len(t, subs.updated, 1)
	assert.Equal(t, entity.SubscriptionCanceled, subs.updated[0].Status)
	assert.NotNil(t, subs.updated[0].CanceledAt)
}

func TestCancel_AlreadyCanceledConflicts(t *testing.T) {
	current := activeSubscription(subscription.TierPro)
	current.Status = entity.SubscriptionCanceled
	uc, _ := newSubFixture(current, &fakeGateway{})

	assert.ErrorIs(t, uc.Cancel("contractor-1"), domain.ErrConflict)
}

func TestHandleProviderEvent_RejectionFlagsPastDue(t *testing.T) {
	current := activeSubscription(subscription.TierPro)
	uc, subs := newSubFixture(current, &fakeGateway{})

	require.NoError(t, uc.HandleProviderEvent("mp-sub-1", payments.ProviderRejected))
	require.Len(t, subs.updated, 1)
	assert.Equal(t, entity.SubscriptionPastDue, subs.updated[0].Status)
}

func TestHandleProviderEvent_ApprovalRenewsPeriod(t *testing.T) {
	current := activeSubscription(subscription.TierPro)
	current.Status = entity.SubscriptionPastDue
	oldEnd := current.PeriodEnd
	uc, subs := newSubFixture(current, &fakeGateway{})

	require.NoError(t, uc.HandleProviderEvent("mp-sub-1", payments.ProviderApproved))
	require.Len(t, subs.updated, 1)
	assert.Equal(t, entity.SubscriptionActive, subs.updated[0].Status)
	assert.True(t, subs.updated[0].PeriodEnd.After(oldEnd))
}

func TestHandleProviderEvent_CanceledIsTerminal(t *testing.T) {
	current := activeSubscription(subscription.TierPro)
	current.Status = entity.SubscriptionCanceled
	uc, subs := newSubFixture(current, &fakeGateway{})

	require.NoError(t, uc.HandleProviderEvent("mp-sub-1", payments.ProviderApproved))
	assert.Empty(t, subs.updated, "late events must not resurrect a canceled plan")
}

func TestHandleProviderEvent_UnknownRefNotFound(t *testing.T) {
	uc, _ := newSubFixture(nil, &fakeGateway{})

	assert.ErrorIs(t, uc.HandleProviderEvent("mp-ghost", payments.ProviderApproved), domain.ErrNotFound)
}
