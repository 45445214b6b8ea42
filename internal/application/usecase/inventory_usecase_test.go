package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

type fakeItemRepo struct {
	repository.InventoryItemRepository
	count   int
	bySKU   *entity.InventoryItem
	skuErr  error
	created []*entity.InventoryItem
}

func (f *fakeItemRepo) CountByContractor(string) (int, error) { return f.count, nil }

func (f *fakeItemRepo) GetByContractorAndSKU(string, string) (*entity.InventoryItem, error) {
	return f.bySKU, f.skuErr
}

func (f *fakeItemRepo) Create(item *entity.InventoryItem) error {
	f.created = append(f.created, item)
	return nil
}

type fakeSubscriptionRepo struct {
	repository.SubscriptionRepository
	current *entity.Subscription
}

func (f *fakeSubscriptionRepo) GetCurrentByContractor(string) (*entity.Subscription, error) {
	return f.current, nil
}

// newInventoryUC wires the use case with no subscription on file, so the
// starter caps apply.
func newInventoryUC(items *fakeItemRepo) *usecase.InventoryUseCase {
	entitlements := usecase.NewEntitlementService(&fakeSubscriptionRepo{})
	return usecase.NewInventoryUseCase(items, entitlements)
}

func itemRequest() dto.CreateInventoryItemRequest {
	return dto.CreateInventoryItemRequest{
		SKU:          "PVC-20",
		Name:         "PVC pipe 20mm",
		Quantity:     40,
		UnitCost:     decimal.RequireFromString("3.75"),
		ReorderLevel: 10,
	}
}

func TestInventoryCreate_PersistsItem(t *testing.T) {
	items := &fakeItemRepo{}
	resp, err := newInventoryUC(items).Create(context.Background(), contractorID, itemRequest())
	require.NoError(t, err)

	assert.Equal(t, "PVC-20", resp.SKU)
	assert.Equal(t, 40, resp.Quantity)
	require.Len(t, items.created, 1)
	assert.Equal(t, contractorID, items.created[0].ContractorID)
}

func TestInventoryCreate_DuplicateSKURejected(t *testing.T) {
	items := &fakeItemRepo{bySKU: &entity.InventoryItem{ID: "item-1", SKU: "PVC-20"}}
	_, err := newInventoryUC(items).Create(context.Background(), contractorID, itemRequest())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, items.created)
}

func TestInventoryCreate_SKULookupFailurePropagates(t *testing.T) {
	lookupErr := errors.New("connection refused")
	items := &fakeItemRepo{skuErr: lookupErr}
	_, err := newInventoryUC(items).Create(context.Background(), contractorID, itemRequest())

	assert.ErrorIs(t, err, lookupErr, "a failed lookup must not read as SKU-available")
	assert.Empty(t, items.created)
}

func TestInventoryCreate_StarterCapEnforced(t *testing.T) {
	items := &fakeItemRepo{count: 25}
	_, err := newInventoryUC(items).Create(context.Background(), contractorID, itemRequest())

	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
	assert.Empty(t, items.created)
}
