package leasing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// ApplicationUseCase covers the rental application lifecycle: submit,
// list, withdraw and reject. Approval lives in ApproveApplicationUseCase
// because it orchestrates several tables in one transaction.
type ApplicationUseCase struct {
	appRepo       repository.ApplicationRepository
	unitRepo      repository.UnitRepository
	propertyRepo  repository.PropertyRepository
	accountRepo   repository.AccountRepository
	screeningRepo repository.ScreeningReportRepository
	notifRepo     repository.NotificationRepository
	notifier      Notifier
	log           *logger.Logger
}

func NewApplicationUseCase(
	appRepo repository.ApplicationRepository,
	unitRepo repository.UnitRepository,
	propertyRepo repository.PropertyRepository,
	accountRepo repository.AccountRepository,
	screeningRepo repository.ScreeningReportRepository,
	notifRepo repository.NotificationRepository,
	notifier Notifier,
	log *logger.Logger,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		appRepo:       appRepo,
		unitRepo:      unitRepo,
		propertyRepo:  propertyRepo,
		accountRepo:   accountRepo,
		screeningRepo: screeningRepo,
		notifRepo:     notifRepo,
		notifier:      notifier,
		log:           log,
	}
}

// Submit files an application for a vacant unit. A given applicant can hold
// at most one pending application per unit.
func (uc *ApplicationUseCase) Submit(ctx context.Context, applicantID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	unit, err := uc.unitRepo.GetByID(req.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if unit.Status != entity.UnitVacant {
		return nil, domain.ErrUnitUnavailable
	}

	existing, err := uc.appRepo.GetPendingByUnitAndApplicant(req.UnitID, applicantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	moveIn, err := time.Parse("2006-01-02", req.MoveInDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	app := &entity.Application{
		ID:            uuid.New().String(),
		UnitID:        req.UnitID,
		ApplicantID:   applicantID,
		MonthlyIncome: req.MonthlyIncome,
		Employer:      req.Employer,
		Status:        entity.ApplicationPending,
		MoveInDate:    moveIn,
		Message:       req.Message,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.appRepo.Create(app); err != nil {
		return nil, err
	}

	uc.notifyApplicant(ctx, applicantID, entity.NotifyApplicationReceived, map[string]string{
		"unit": unit.Label,
	})

	return uc.toResponse(app, ""), nil
}

// ListForLandlord returns applications across the landlord's units,
// optionally filtered by status, with each applicant's screening status.
func (uc *ApplicationUseCase) ListForLandlord(landlordID, status string, page dto.PageRequest) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.ListByLandlord(landlordID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, *uc.toResponse(app, uc.screeningStatus(app.ID)))
	}
	return out, nil
}

// ListForApplicant returns the applicant's own applications.
func (uc *ApplicationUseCase) ListForApplicant(applicantID string) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, *uc.toResponse(app, ""))
	}
	return out, nil
}

// Get returns one application, visible to the applicant or the landlord
// who owns the unit.
func (uc *ApplicationUseCase) Get(requesterID, appID string) (*dto.ApplicationResponse, error) {
	app, err := uc.appRepo.GetByID(appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if app.ApplicantID != requesterID {
		if err := uc.ensureLandlordOwnsUnit(requesterID, app.UnitID); err != nil {
			return nil, err
		}
		return uc.toResponse(app, uc.screeningStatus(app.ID)), nil
	}
	return uc.toResponse(app, ""), nil
}

// Withdraw lets the applicant pull a still-pending application.
func (uc *ApplicationUseCase) Withdraw(applicantID, appID string) error {
	app, err := uc.appRepo.GetByID(appID)
	if err != nil {
		return err
	}
	if app == nil || app.ApplicantID != applicantID {
		return domain.ErrNotFound
	}
	if app.Status != entity.ApplicationPending {
		return domain.ErrConflict
	}
	app.Status = entity.ApplicationWithdrawn
	app.UpdatedAt = time.Now()
	return uc.appRepo.Update(app)
}

// Reject marks a pending application rejected with the landlord's reason
// and notifies the applicant.
func (uc *ApplicationUseCase) Reject(ctx context.Context, landlordID, appID string, req *dto.RejectApplicationRequest) error {
	app, err := uc.appRepo.GetByID(appID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	if err := uc.ensureLandlordOwnsUnit(landlordID, app.UnitID); err != nil {
		return err
	}
	if app.Status != entity.ApplicationPending {
		return domain.ErrConflict
	}

	now := time.Now()
	app.Status = entity.ApplicationRejected
	app.DecisionNote = req.Reason
	app.DecidedBy = landlordID
	app.DecidedAt = &now
	app.UpdatedAt = now
	if err := uc.appRepo.Update(app); err != nil {
		return err
	}

	unitLabel := app.UnitID
	if unit, err := uc.unitRepo.GetByID(app.UnitID); err == nil && unit != nil {
		unitLabel = unit.Label
	}
	uc.notifyApplicant(ctx, app.ApplicantID, entity.NotifyApplicationRejected, map[string]string{
		"unit": unitLabel,
		"note": req.Reason,
	})
	return nil
}

func (uc *ApplicationUseCase) ensureLandlordOwnsUnit(landlordID, unitID string) error {
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

func (uc *ApplicationUseCase) screeningStatus(applicationID string) string {
	report, err := uc.screeningRepo.GetByApplicationID(applicationID)
	if err != nil || report == nil {
		return ""
	}
	return report.Status
}

// notifyApplicant persists a notification row and delivers the mail.
// Failures are logged, never surfaced: an undelivered mail must not fail
// the operation that triggered it.
func (uc *ApplicationUseCase) notifyApplicant(ctx context.Context, applicantID, kind string, data map[string]string) {
	n, err := uc.notifier.Compose(applicantID, kind, data)
	if err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Msg("compose notification failed")
		return
	}
	if err := uc.notifRepo.Create(n); err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Msg("persist notification failed")
		return
	}
	account, err := uc.accountRepo.GetByID(applicantID)
	if err != nil || account == nil {
		return
	}
	if err := uc.notifier.Deliver(ctx, n, account.Email); err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Msg("deliver notification failed")
	}
}

func (uc *ApplicationUseCase) toResponse(app *entity.Application, screening string) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:              app.ID,
		UnitID:          app.UnitID,
		ApplicantID:     app.ApplicantID,
		MonthlyIncome:   app.MonthlyIncome,
		Employer:        app.Employer,
		Status:          app.Status,
		MoveInDate:      app.MoveInDate.Format("2006-01-02"),
		Message:         app.Message,
		DecisionNote:    app.DecisionNote,
		ScreeningStatus: screening,
		CreatedAt:       app.CreatedAt,
		DecidedAt:       app.DecidedAt,
	}
}
