package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePropertyRequest creates a property for the authenticated landlord.
type CreatePropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Type    string `json:"type"`
}

// UpdatePropertyRequest updates mutable property fields.
type UpdatePropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Type    string `json:"type"`
}

// PropertyResponse is the API view of a property.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUnitRequest adds a unit under a property.
type CreateUnitRequest struct {
	Label      string          `json:"label"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  int             `json:"bathrooms"`
	SquareFeet int             `json:"square_feet"`
	Rent       decimal.Decimal `json:"rent"`
	Deposit    decimal.Decimal `json:"deposit"`
}

// UpdateUnitRequest updates mutable unit fields.
type UpdateUnitRequest struct {
	Label      string          `json:"label"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  int             `json:"bathrooms"`
	SquareFeet int             `json:"square_feet"`
	Rent       decimal.Decimal `json:"rent"`
	Deposit    decimal.Decimal `json:"deposit"`
	Status     string          `json:"status"`
}

// UnitResponse is the API view of a unit.
type UnitResponse struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"property_id"`
	Label      string          `json:"label"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  int             `json:"bathrooms"`
	SquareFeet int             `json:"square_feet"`
	Rent       decimal.Decimal `json:"rent"`
	Deposit    decimal.Decimal `json:"deposit"`
	Status     string          `json:"status"`
}
