package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LandlordSummary is the raw dashboard aggregate. Produced by the DB; the use
// case converts it to a DTO.
type LandlordSummary struct {
	Properties          int
	UnitsTotal          int
	UnitsOccupied       int
	PendingApplications int
	ActiveLeases        int
	OutstandingRent     decimal.Decimal // sum of open+failed rent invoices
	CollectedThisMonth  decimal.Decimal
}

// ContractorSummary is the raw contractor dashboard aggregate.
type ContractorSummary struct {
	OpenJobs        int
	JobsThisMonth   int
	Customers       int
	UnpaidInvoices  int
	UnpaidTotal     decimal.Decimal
	RevenueThisYear decimal.Decimal
	LowStockItems   int // quantity at or below reorder level
}

// AnalyticsRepository defines the read-only dashboard queries.
type AnalyticsRepository interface {
	GetLandlordSummary(ctx context.Context, landlordID string) (*LandlordSummary, error)
	GetContractorSummary(ctx context.Context, contractorID string) (*ContractorSummary, error)
}
