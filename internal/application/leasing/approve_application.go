package leasing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/billing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// DefaultLeaseTermMonths is the lease length applied on approval.
const DefaultLeaseTermMonths = 12

// ApproveApplicationUseCase turns a pending application into a draft lease.
// Everything that must hold together happens in one transaction: the
// application flips to approved, a draft lease is created, the first rent
// invoice (prorated for a mid-month move-in) is generated, the unit is
// marked occupied and a notification row is written. The applicant's email
// goes out only after the transaction commits.
type ApproveApplicationUseCase struct {
	txRunner     TxRunner
	appRepo      repository.ApplicationRepository
	unitRepo     repository.UnitRepository
	propertyRepo repository.PropertyRepository
	accountRepo  repository.AccountRepository
	notifier     Notifier
	log          *logger.Logger
}

func NewApproveApplicationUseCase(
	txRunner TxRunner,
	appRepo repository.ApplicationRepository,
	unitRepo repository.UnitRepository,
	propertyRepo repository.PropertyRepository,
	accountRepo repository.AccountRepository,
	notifier Notifier,
	log *logger.Logger,
) *ApproveApplicationUseCase {
	return &ApproveApplicationUseCase{
		txRunner:     txRunner,
		appRepo:      appRepo,
		unitRepo:     unitRepo,
		propertyRepo: propertyRepo,
		accountRepo:  accountRepo,
		notifier:     notifier,
		log:          log,
	}
}

// Approve executes the approval transaction for landlordID over appID.
func (uc *ApproveApplicationUseCase) Approve(ctx context.Context, landlordID, appID string) (*dto.ApproveApplicationResult, error) {
	// Read-only validation outside the transaction.
	app, err := uc.appRepo.GetByID(appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByID(app.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	prop, err := uc.propertyRepo.GetByID(unit.PropertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, domain.ErrNotFound
	}
	if prop.LandlordID != landlordID {
		return nil, domain.ErrForbidden
	}
	if app.Status != entity.ApplicationPending {
		return nil, domain.ErrConflict
	}
	if unit.Status != entity.UnitVacant {
		return nil, domain.ErrUnitUnavailable
	}

	now := time.Now()
	start := app.MoveInDate
	end := start.AddDate(0, DefaultLeaseTermMonths, 0)

	lease := &entity.Lease{
		ID:            uuid.New().String(),
		UnitID:        unit.ID,
		LandlordID:    landlordID,
		TenantID:      app.ApplicantID,
		ApplicationID: app.ID,
		StartDate:     start,
		EndDate:       end,
		Rent:          unit.Rent,
		Deposit:       unit.Deposit,
		Status:        entity.LeaseDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	firstInvoice := &entity.RentInvoice{
		ID:        uuid.New().String(),
		LeaseID:   lease.ID,
		Period:    billing.Period(start),
		Amount:    billing.ProrateFirstMonth(unit.Rent, start),
		DueDate:   start,
		Status:    entity.RentInvoiceOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	notification, err := uc.notifier.Compose(app.ApplicantID, entity.NotifyApplicationApproved, map[string]string{
		"unit":       unit.Label + " at " + prop.Name,
		"start_date": start.Format("2006-01-02"),
		"amount":     firstInvoice.Amount.StringFixed(2),
		"period":     firstInvoice.Period,
	})
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		appRepo repository.ApplicationRepository,
		leaseRepo repository.LeaseRepository,
		unitRepo repository.UnitRepository,
		invoiceRepo repository.RentInvoiceRepository,
		notifRepo repository.NotificationRepository,
	) error {
		// Re-read inside the transaction; a concurrent approval of another
		// application for the same unit must not slip through.
		current, err := appRepo.GetByID(appID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.Status != entity.ApplicationPending {
			return domain.ErrConflict
		}
		currentUnit, err := unitRepo.GetByID(unit.ID)
		if err != nil {
			return err
		}
		if currentUnit == nil || currentUnit.Status != entity.UnitVacant {
			return domain.ErrUnitUnavailable
		}

		current.Status = entity.ApplicationApproved
		current.DecidedBy = landlordID
		current.DecidedAt = &now
		current.UpdatedAt = now
		if err := appRepo.Update(current); err != nil {
			return err
		}
		*app = *current

		if err := leaseRepo.Create(lease); err != nil {
			return err
		}
		if err := invoiceRepo.Create(firstInvoice); err != nil {
			return err
		}
		if err := unitRepo.UpdateStatus(unit.ID, entity.UnitOccupied); err != nil {
			return err
		}
		return notifRepo.Create(notification)
	})
	if err != nil {
		return nil, err
	}

	uc.deliverAfterCommit(ctx, notification, app.ApplicantID)

	return &dto.ApproveApplicationResult{
		Application: dto.ApplicationResponse{
			ID:            app.ID,
			UnitID:        app.UnitID,
			ApplicantID:   app.ApplicantID,
			MonthlyIncome: app.MonthlyIncome,
			Employer:      app.Employer,
			Status:        app.Status,
			MoveInDate:    app.MoveInDate.Format("2006-01-02"),
			CreatedAt:     app.CreatedAt,
			DecidedAt:     app.DecidedAt,
		},
		LeaseID: lease.ID,
		FirstInvoice: dto.RentInvoiceResponse{
			ID:      firstInvoice.ID,
			LeaseID: firstInvoice.LeaseID,
			Period:  firstInvoice.Period,
			Amount:  firstInvoice.Amount,
			DueDate: firstInvoice.DueDate.Format("2006-01-02"),
			Status:  firstInvoice.Status,
		},
	}, nil
}

// deliverAfterCommit sends the approval email. The notification row is
// already committed, so a failed send leaves a retryable unsent row for
// the scheduler's mail sweep.
func (uc *ApproveApplicationUseCase) deliverAfterCommit(ctx context.Context, n *entity.Notification, recipientID string) {
	account, err := uc.accountRepo.GetByID(recipientID)
	if err != nil || account == nil {
		uc.log.Error().Str("recipient", recipientID).Msg("lookup recipient for approval mail failed")
		return
	}
	if err := uc.notifier.Deliver(ctx, n, account.Email); err != nil {
		uc.log.Error().Err(err).Str("notification", n.ID).Msg("deliver approval mail failed")
	}
}
