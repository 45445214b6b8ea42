package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a contractor's client (not a platform account).
type Customer struct {
	ID           string
	ContractorID string
	Name         string
	Email        string
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Employee works for a contractor business.
type Employee struct {
	ID           string
	ContractorID string
	Name         string
	Email        string
	Title        string
	HourlyRate   decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
