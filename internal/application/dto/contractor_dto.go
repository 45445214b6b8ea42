package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertContractorProfileRequest creates or updates the business profile.
type UpsertContractorProfileRequest struct {
	BusinessName  string `json:"business_name"`
	Trade         string `json:"trade"`
	LicenseNumber string `json:"license_number"`
	LicenseState  string `json:"license_state"`
}

// ContractorProfileResponse is the API view of a profile.
type ContractorProfileResponse struct {
	ID               string     `json:"id"`
	BusinessName     string     `json:"business_name"`
	Trade            string     `json:"trade"`
	LicenseNumber    string     `json:"license_number,omitempty"`
	LicenseState     string     `json:"license_state,omitempty"`
	LicenseStatus    string     `json:"license_status"`
	LicenseExpiresAt *time.Time `json:"license_expires_at,omitempty"`
	LicenseCheckedAt *time.Time `json:"license_checked_at,omitempty"`
	RatingAvg        float64    `json:"rating_avg"`
	RatingCount      int        `json:"rating_count"`
}

// CreateJobRequest opens a job for a customer.
type CreateJobRequest struct {
	CustomerID   string          `json:"customer_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ScheduledAt  string          `json:"scheduled_at,omitempty"` // RFC 3339
	QuotedAmount decimal.Decimal `json:"quoted_amount"`
}

// UpdateJobRequest advances or edits a job.
type UpdateJobRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	ScheduledAt  string          `json:"scheduled_at,omitempty"`
	FinalAmount  decimal.Decimal `json:"final_amount"`
	QuotedAmount decimal.Decimal `json:"quoted_amount"`
}

// JobResponse is the API view of a job.
type JobResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status"`
	ScheduledAt  *time.Time      `json:"scheduled_at,omitempty"`
	QuotedAmount decimal.Decimal `json:"quoted_amount"`
	FinalAmount  decimal.Decimal `json:"final_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateCustomerRequest adds a client to the contractor's book.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse is the API view of a customer.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateEmployeeRequest adds an employee.
type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Title      string          `json:"title"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// EmployeeResponse is the API view of an employee.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email,omitempty"`
	Title      string          `json:"title,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
}

// CreateInventoryItemRequest adds stock.
type CreateInventoryItemRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ReorderLevel int             `json:"reorder_level"`
}

// InventoryItemResponse is the API view of a stock item.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ReorderLevel int             `json:"reorder_level"`
}

// CreateReviewRequest posts a customer review for a contractor.
type CreateReviewRequest struct {
	CustomerID string `json:"customer_id"`
	JobID      string `json:"job_id,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewResponse is the API view of a review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
