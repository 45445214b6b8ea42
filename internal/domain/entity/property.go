package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a landlord-owned building or complex containing rentable units.
type Property struct {
	ID         string
	LandlordID string
	Name       string
	Address    string
	City       string
	State      string
	ZipCode    string
	Type       string // single_family, multi_family, condo, commercial
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Unit statuses.
const (
	UnitVacant      = "vacant"
	UnitOccupied    = "occupied"
	UnitUnlisted    = "unlisted"
	UnitMaintenance = "maintenance"
)

// Unit is a rentable unit inside a Property.
type Unit struct {
	ID         string
	PropertyID string
	Label      string // "2B", "Suite 101"
	Bedrooms   int
	Bathrooms  int
	SquareFeet int
	Rent       decimal.Decimal // monthly rent
	Deposit    decimal.Decimal
	Status     string // vacant, occupied, unlisted, maintenance
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
