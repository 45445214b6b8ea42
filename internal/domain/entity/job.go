package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job statuses.
const (
	JobQuoted     = "quoted"
	JobScheduled  = "scheduled"
	JobInProgress = "in_progress"
	JobDone       = "done"
	JobCanceled   = "canceled"
)

// Job is a unit of contractor work for a customer.
type Job struct {
	ID           string
	ContractorID string
	CustomerID   string
	Title        string
	Description  string
	Status       string // quoted, scheduled, in_progress, done, canceled
	ScheduledAt  *time.Time
	QuotedAmount decimal.Decimal
	FinalAmount  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
