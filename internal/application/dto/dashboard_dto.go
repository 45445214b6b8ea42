package dto

import "github.com/shopspring/decimal"

// LandlordDashboardResponse is the landlord overview.
type LandlordDashboardResponse struct {
	Properties          int             `json:"properties"`
	UnitsTotal          int             `json:"units_total"`
	UnitsOccupied       int             `json:"units_occupied"`
	OccupancyRate       float64         `json:"occupancy_rate"` // 0..1, 0 when no units
	PendingApplications int             `json:"pending_applications"`
	ActiveLeases        int             `json:"active_leases"`
	OutstandingRent     decimal.Decimal `json:"outstanding_rent"`
	CollectedThisMonth  decimal.Decimal `json:"collected_this_month"`
}

// ContractorDashboardResponse is the contractor overview.
type ContractorDashboardResponse struct {
	OpenJobs        int             `json:"open_jobs"`
	JobsThisMonth   int             `json:"jobs_this_month"`
	Customers       int             `json:"customers"`
	UnpaidInvoices  int             `json:"unpaid_invoices"`
	UnpaidTotal     decimal.Decimal `json:"unpaid_total"`
	RevenueThisYear decimal.Decimal `json:"revenue_this_year"`
	LowStockItems   int             `json:"low_stock_items"`
}
