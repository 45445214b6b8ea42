package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// InventoryItemRepository is the persistence port for contractor stock.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByContractorAndSKU(contractorID, sku string) (*entity.InventoryItem, error)
	ListByContractor(contractorID string, limit, offset int) ([]*entity.InventoryItem, error)
	CountByContractor(contractorID string) (int, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
