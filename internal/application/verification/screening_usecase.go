package verification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// ScreeningUseCase orders tenant background checks and applies provider
// results.
type ScreeningUseCase struct {
	reportRepo   repository.ScreeningReportRepository
	appRepo      repository.ApplicationRepository
	unitRepo     repository.UnitRepository
	propertyRepo repository.PropertyRepository
	accountRepo  repository.AccountRepository
	checker      BackgroundChecker
}

func NewScreeningUseCase(
	reportRepo repository.ScreeningReportRepository,
	appRepo repository.ApplicationRepository,
	unitRepo repository.UnitRepository,
	propertyRepo repository.PropertyRepository,
	accountRepo repository.AccountRepository,
	checker BackgroundChecker,
) *ScreeningUseCase {
	return &ScreeningUseCase{
		reportRepo:   reportRepo,
		appRepo:      appRepo,
		unitRepo:     unitRepo,
		propertyRepo: propertyRepo,
		accountRepo:  accountRepo,
		checker:      checker,
	}
}

// Order requests a background check for a pending application. One report
// per application; a failed report may be re-ordered.
func (uc *ScreeningUseCase) Order(ctx context.Context, landlordID, applicationID string) (*dto.ScreeningReportResponse, error) {
	app, err := uc.appRepo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.ensureLandlordOwnsUnit(landlordID, app.UnitID); err != nil {
		return nil, err
	}
	if app.Status != entity.ApplicationPending {
		return nil, domain.ErrConflict
	}

	existing, err := uc.reportRepo.GetByApplicationID(applicationID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != entity.ScreeningFailed {
		return nil, domain.ErrDuplicate
	}

	applicant, err := uc.accountRepo.GetByID(app.ApplicantID)
	if err != nil || applicant == nil {
		return nil, domain.ErrNotFound
	}

	providerRef, err := uc.checker.OrderReport(ctx, ScreeningCandidate{
		ApplicationID: applicationID,
		Name:          applicant.Name,
		Email:         applicant.Email,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &entity.ScreeningReport{
		ID:            uuid.New().String(),
		ApplicationID: applicationID,
		ProviderRef:   providerRef,
		Status:        entity.ScreeningPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if existing != nil {
		// Re-order after a failure reuses the row.
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
		if err := uc.reportRepo.Update(report); err != nil {
			return nil, err
		}
	} else if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return toScreeningResponse(report), nil
}

// Get returns the report for an application, visible to the landlord who
// owns the unit.
func (uc *ScreeningUseCase) Get(landlordID, applicationID string) (*dto.ScreeningReportResponse, error) {
	app, err := uc.appRepo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.ensureLandlordOwnsUnit(landlordID, app.UnitID); err != nil {
		return nil, err
	}
	report, err := uc.reportRepo.GetByApplicationID(applicationID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return toScreeningResponse(report), nil
}

// HandleProviderEvent applies a screening result callback. Completed
// reports ignore late or duplicate events.
func (uc *ScreeningUseCase) HandleProviderEvent(providerRef, result, summary string) error {
	report, err := uc.reportRepo.GetByProviderRef(providerRef)
	if err != nil {
		return err
	}
	if report == nil {
		return domain.ErrNotFound
	}
	if report.Status != entity.ScreeningPending {
		return nil
	}
	switch result {
	case entity.ScreeningClear, entity.ScreeningConsider, entity.ScreeningFailed:
	default:
		return domain.ErrInvalidInput
	}
	now := time.Now()
	report.Status = result
	report.Summary = summary
	report.CompletedAt = &now
	report.UpdatedAt = now
	return uc.reportRepo.Update(report)
}

func (uc *ScreeningUseCase) ensureLandlordOwnsUnit(landlordID, unitID string) error {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	prop, err := uc.propertyRepo.GetByID(unit.PropertyID)
	if err != nil {
		return err
	}
	if prop == nil {
		return domain.ErrNotFound
	}
	if prop.LandlordID != landlordID {
		return domain.ErrForbidden
	}
	return nil
}

func toScreeningResponse(report *entity.ScreeningReport) *dto.ScreeningReportResponse {
	return &dto.ScreeningReportResponse{
		ID:            report.ID,
		ApplicationID: report.ApplicationID,
		Status:        report.Status,
		Summary:       report.Summary,
		CompletedAt:   report.CompletedAt,
	}
}
