package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only dashboard aggregates.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetLandlordSummary aggregates the landlord dashboard in one round trip.
func (r *AnalyticsRepo) GetLandlordSummary(ctx context.Context, landlordID string) (*repository.LandlordSummary, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM properties WHERE landlord_id = $1)                       AS properties,
	    (SELECT COUNT(*) FROM units u
	        JOIN properties p ON p.id = u.property_id
	        WHERE p.landlord_id = $1)                                                  AS units_total,
	    (SELECT COUNT(*) FROM units u
	        JOIN properties p ON p.id = u.property_id
	        WHERE p.landlord_id = $1 AND u.status = 'occupied')                        AS units_occupied,
	    (SELECT COUNT(*) FROM applications a
	        JOIN units u ON u.id = a.unit_id
	        JOIN properties p ON p.id = u.property_id
	        WHERE p.landlord_id = $1 AND a.status = 'pending')                         AS pending_applications,
	    (SELECT COUNT(*) FROM leases WHERE landlord_id = $1 AND status = 'active')     AS active_leases,
	    (SELECT COALESCE(SUM(i.amount), 0) FROM rent_invoices i
	        JOIN leases l ON l.id = i.lease_id
	        WHERE l.landlord_id = $1 AND i.status IN ('open', 'failed'))               AS outstanding_rent,
	    (SELECT COALESCE(SUM(i.amount), 0) FROM rent_invoices i
	        JOIN leases l ON l.id = i.lease_id
	        WHERE l.landlord_id = $1 AND i.status = 'paid'
	          AND i.paid_at >= date_trunc('month', $2::timestamptz))                   AS collected_this_month`

	var s repository.LandlordSummary
	err := r.pool.QueryRow(ctx, query, landlordID, time.Now()).Scan(
		&s.Properties,
		&s.UnitsTotal,
		&s.UnitsOccupied,
		&s.PendingApplications,
		&s.ActiveLeases,
		&s.OutstandingRent,
		&s.CollectedThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetLandlordSummary: %w", err)
	}
	return &s, nil
}

// GetContractorSummary aggregates the contractor dashboard in one round trip.
func (r *AnalyticsRepo) GetContractorSummary(ctx context.Context, contractorID string) (*repository.ContractorSummary, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM jobs
	        WHERE contractor_id = $1 AND status IN ('quoted', 'scheduled', 'in_progress'))  AS open_jobs,
	    (SELECT COUNT(*) FROM jobs
	        WHERE contractor_id = $1
	          AND created_at >= date_trunc('month', $2::timestamptz))                       AS jobs_this_month,
	    (SELECT COUNT(*) FROM customers WHERE contractor_id = $1)                          AS customers,
	    (SELECT COUNT(*) FROM work_invoices
	        WHERE contractor_id = $1 AND status = 'sent')                                  AS unpaid_invoices,
	    (SELECT COALESCE(SUM(grand_total), 0) FROM work_invoices
	        WHERE contractor_id = $1 AND status = 'sent')                                  AS unpaid_total,
	    (SELECT COALESCE(SUM(grand_total), 0) FROM work_invoices
	        WHERE contractor_id = $1 AND status = 'paid'
	          AND date >= date_trunc('year', $2::timestamptz))                             AS revenue_this_year,
	    (SELECT COUNT(*) FROM inventory_items
	        WHERE contractor_id = $1 AND quantity <= reorder_level)                        AS low_stock_items`

	var s repository.ContractorSummary
	err := r.pool.QueryRow(ctx, query, contractorID, time.Now()).Scan(
		&s.OpenJobs,
		&s.JobsThisMonth,
		&s.Customers,
		&s.UnpaidInvoices,
		&s.UnpaidTotal,
		&s.RevenueThisYear,
		&s.LowStockItems,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetContractorSummary: %w", err)
	}
	return &s, nil
}
