package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// InventoryUseCase contractor stock management, capped by subscription tier.
type InventoryUseCase struct {
	itemRepo     repository.InventoryItemRepository
	entitlements *EntitlementService
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(itemRepo repository.InventoryItemRepository, entitlements *EntitlementService) *InventoryUseCase {
	return &InventoryUseCase{itemRepo: itemRepo, entitlements: entitlements}
}

// Create adds a stock item. SKU is unique per contractor.
func (uc *InventoryUseCase) Create(ctx context.Context, contractorID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	limits, err := uc.entitlements.LimitsFor(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	count, err := uc.itemRepo.CountByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	if !limits.Allows(limits.Inventory, count) {
		return nil, domain.ErrLimitExceeded
	}
	existing, err := uc.itemRepo.GetByContractorAndSKU(contractorID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		ContractorID: contractorID,
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		UnitCost:     in.UnitCost,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lists the contractor's stock.
func (uc *InventoryUseCase) List(contractorID string, limit, offset int) ([]*dto.InventoryItemResponse, error) {
	list, err := uc.itemRepo.ListByContractor(contractorID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Adjust changes quantity by delta (negative to consume). Quantity never
// goes below zero.
func (uc *InventoryUseCase) Adjust(contractorID, id string, delta int) (*dto.InventoryItemResponse, error) {
	item, err := uc.owned(contractorID, id)
	if err != nil {
		return nil, err
	}
	next := item.Quantity + delta
	if next < 0 {
		return nil, domain.ErrConflict
	}
	item.Quantity = next
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete removes a stock item owned by the contractor.
func (uc *InventoryUseCase) Delete(contractorID, id string) error {
	if _, err := uc.owned(contractorID, id); err != nil {
		return err
	}
	return uc.itemRepo.Delete(id)
}

func (uc *InventoryUseCase) owned(contractorID, id string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.ContractorID != contractorID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func toItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:           i.ID,
		SKU:          i.SKU,
		Name:         i.Name,
		Quantity:     i.Quantity,
		UnitCost:     i.UnitCost,
		ReorderLevel: i.ReorderLevel,
	}
}
