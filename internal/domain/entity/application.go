package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application statuses. Pending applications may be approved, rejected, or
// withdrawn by the applicant; all three are terminal.
const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
)

// Application is a prospective tenant's rental request for a unit.
type Application struct {
	ID            string
	UnitID        string
	ApplicantID   string
	MonthlyIncome decimal.Decimal
	Employer      string
	MoveInDate    time.Time
	Message       string
	Status        string // pending, approved, rejected, withdrawn
	DecisionNote  string // reason recorded on reject
	DecidedBy     string // landlord account id
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
