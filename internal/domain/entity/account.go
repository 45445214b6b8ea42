package entity

import "time"

// Valid roles for Account.
const (
	RoleAdmin      = "admin"
	RoleLandlord   = "landlord"
	RoleContractor = "contractor"
	RoleTenant     = "tenant"
)

// Account statuses.
const (
	AccountActive    = "active"
	AccountInactive  = "inactive"
	AccountSuspended = "suspended"
)

// Account is a platform user. Landlords own properties, contractors own a
// business profile, tenants apply for and occupy units.
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Name         string
	Phone        string
	Role         string // see Role* constants
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
