package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitApplicationRequest is a prospective tenant's rental request.
type SubmitApplicationRequest struct {
	UnitID        string          `json:"unit_id"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	Employer      string          `json:"employer"`
	MoveInDate    string          `json:"move_in_date"` // YYYY-MM-DD
	Message       string          `json:"message"`
}

// RejectApplicationRequest records the landlord's reason.
type RejectApplicationRequest struct {
	Reason string `json:"reason"`
}

// ApplicationResponse is the API view of an application. ScreeningStatus is
// surfaced when a report exists; empty otherwise.
type ApplicationResponse struct {
	ID              string          `json:"id"`
	UnitID          string          `json:"unit_id"`
	ApplicantID     string          `json:"applicant_id"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	Employer        string          `json:"employer,omitempty"`
	MoveInDate      string          `json:"move_in_date"`
	Message         string          `json:"message,omitempty"`
	Status          string          `json:"status"`
	DecisionNote    string          `json:"decision_note,omitempty"`
	ScreeningStatus string          `json:"screening_status,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
}

// ApproveApplicationResult is returned by the approval transaction.
type ApproveApplicationResult struct {
	Application  ApplicationResponse `json:"application"`
	LeaseID      string              `json:"lease_id"`
	FirstInvoice RentInvoiceResponse `json:"first_invoice"`
}
