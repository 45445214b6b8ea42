package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is stock a contractor keeps on hand (parts, materials).
type InventoryItem struct {
	ID           string
	ContractorID string
	SKU          string
	Name         string
	Quantity     int
	UnitCost     decimal.Decimal
	ReorderLevel int // restock hint when Quantity falls at or below
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
