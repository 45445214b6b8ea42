package dto

import "time"

// RegisterRequest creates a platform account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // landlord, contractor, tenant
}

// LoginRequest authenticates by email/password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token plus account.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
