package usecase

import (
	"context"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// DashboardUseCase read-only overviews for landlords and contractors.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// LandlordOverview aggregates occupancy, pipeline, and rent collection.
func (uc *DashboardUseCase) LandlordOverview(ctx context.Context, landlordID string) (*dto.LandlordDashboardResponse, error) {
	s, err := uc.analyticsRepo.GetLandlordSummary(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	occupancy := 0.0
	if s.UnitsTotal > 0 {
		occupancy = float64(s.UnitsOccupied) / float64(s.UnitsTotal)
	}
	return &dto.LandlordDashboardResponse{
		Properties:          s.Properties,
		UnitsTotal:          s.UnitsTotal,
		UnitsOccupied:       s.UnitsOccupied,
		OccupancyRate:       occupancy,
		PendingApplications: s.PendingApplications,
		ActiveLeases:        s.ActiveLeases,
		OutstandingRent:     s.OutstandingRent,
		CollectedThisMonth:  s.CollectedThisMonth,
	}, nil
}

// ContractorOverview aggregates jobs, receivables, and stock health.
func (uc *DashboardUseCase) ContractorOverview(ctx context.Context, contractorID string) (*dto.ContractorDashboardResponse, error) {
	s, err := uc.analyticsRepo.GetContractorSummary(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	return &dto.ContractorDashboardResponse{
		OpenJobs:        s.OpenJobs,
		JobsThisMonth:   s.JobsThisMonth,
		Customers:       s.Customers,
		UnpaidInvoices:  s.UnpaidInvoices,
		UnpaidTotal:     s.UnpaidTotal,
		RevenueThisYear: s.RevenueThisYear,
		LowStockItems:   s.LowStockItems,
	}, nil
}
