// Package scheduler runs the platform's recurring jobs: monthly rent invoice
// generation, due-date reminders, lease expiry notices, license re-checks,
// subscription renewals, and the unsent-mail sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/billing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/notify"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// RentDueSoon is how far ahead of the due date reminders go out.
const RentDueSoon = 3 * 24 * time.Hour

// ExpiryNoticeWindow is how far ahead of lease end the expiry notice goes out.
const ExpiryNoticeWindow = 30 * 24 * time.Hour

// Scheduler wires the cron jobs. Jobs log failures and never panic; a failed
// run is retried on the next tick.
type Scheduler struct {
	cron *cron.Cron

	leaseRepo   repository.LeaseRepository
	invoiceRepo repository.RentInvoiceRepository
	accountRepo repository.AccountRepository
	notifRepo   repository.NotificationRepository

	notifier  *notify.Service
	licenseUC *verification.LicenseUseCase
	subUC     *payments.SubscriptionUseCase

	log *logger.Logger
}

// New builds the scheduler with all jobs registered but not started.
func New(
	leaseRepo repository.LeaseRepository,
	invoiceRepo repository.RentInvoiceRepository,
	accountRepo repository.AccountRepository,
	notifRepo repository.NotificationRepository,
	notifier *notify.Service,
	licenseUC *verification.LicenseUseCase,
	subUC *payments.SubscriptionUseCase,
	log *logger.Logger,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		leaseRepo:   leaseRepo,
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		notifRepo:   notifRepo,
		notifier:    notifier,
		licenseUC:   licenseUC,
		subUC:       subUC,
		log:         log,
	}

	jobs := []struct {
		spec string
		name string
		run  func()
	}{
		{"0 6 1 * *", "generate_rent_invoices", s.generateRentInvoices},
		{"0 9 * * *", "rent_due_reminders", s.sendRentReminders},
		{"0 9 * * 1", "lease_expiry_notices", s.sendExpiryNotices},
		{"0 3 * * *", "license_recheck", s.recheckLicenses},
		{"0 4 * * *", "subscription_sweep", s.sweepSubscriptions},
		{"*/5 * * * *", "mail_sweep", s.sweepUnsentMail},
	}
	for _, j := range jobs {
		if _, err := s.cron.AddFunc(j.spec, j.run); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler stopped")
}

// generateRentInvoices creates the current month's invoice for every active
// lease. The (lease, period) uniqueness check makes re-runs harmless.
func (s *Scheduler) generateRentInvoices() {
	now := time.Now().UTC()
	period := billing.Period(now)
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	leases, err := s.leaseRepo.ListActive()
	if err != nil {
		s.log.Error().Err(err).Msg("invoice generation: list active leases")
		return
	}

	created := 0
	for _, lease := range leases {
		if periodStart.Before(lease.StartDate) || periodStart.After(lease.EndDate) {
			continue
		}
		existing, err := s.invoiceRepo.GetByLeaseAndPeriod(lease.ID, period)
		if err != nil {
			s.log.Error().Err(err).Str("lease_id", lease.ID).Msg("invoice generation: dedupe lookup")
			continue
		}
		if existing != nil {
			continue
		}
		inv := &entity.RentInvoice{
			ID:        uuid.NewString(),
			LeaseID:   lease.ID,
			Period:    period,
			Amount:    lease.Rent,
			DueDate:   periodStart,
			Status:    entity.RentInvoiceOpen,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.invoiceRepo.Create(inv); err != nil {
			s.log.Error().Err(err).Str("lease_id", lease.ID).Msg("invoice generation: create")
			continue
		}
		created++
	}
	s.log.Info().Str("period", period).Int("created", created).Msg("rent invoices generated")
}

// sendRentReminders mails tenants whose open invoices come due soon.
// Reminders repeat daily until the invoice is paid.
func (s *Scheduler) sendRentReminders() {
	ctx := context.Background()
	now := time.Now().UTC()

	invoices, err := s.invoiceRepo.ListOpenDueBefore(now.Add(RentDueSoon))
	if err != nil {
		s.log.Error().Err(err).Msg("rent reminders: list due invoices")
		return
	}

	for _, inv := range invoices {
		lease, err := s.leaseRepo.GetByID(inv.LeaseID)
		if err != nil || lease == nil {
			s.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("rent reminders: lease lookup")
			continue
		}
		s.mail(ctx, lease.TenantID, entity.NotifyRentDue, map[string]string{
			"amount":   inv.Amount.StringFixed(2),
			"period":   inv.Period,
			"due_date": inv.DueDate.Format("January 2, 2006"),
		})
	}
}

// sendExpiryNotices mails tenants whose active lease ends within the window.
func (s *Scheduler) sendExpiryNotices() {
	ctx := context.Background()
	now := time.Now().UTC()

	leases, err := s.leaseRepo.ListActiveEndingBefore(now.Add(ExpiryNoticeWindow))
	if err != nil {
		s.log.Error().Err(err).Msg("expiry notices: list ending leases")
		return
	}

	for _, lease := range leases {
		s.mail(ctx, lease.TenantID, entity.NotifyLeaseExpiring, map[string]string{
			"unit":     lease.UnitID,
			"end_date": lease.EndDate.Format("January 2, 2006"),
		})
	}
}

func (s *Scheduler) recheckLicenses() {
	if err := s.licenseUC.Sweep(context.Background(), time.Now().UTC()); err != nil {
		s.log.Error().Err(err).Msg("license recheck sweep")
	}
}

func (s *Scheduler) sweepSubscriptions() {
	if err := s.subUC.SweepExpired(time.Now().UTC()); err != nil {
		s.log.Error().Err(err).Msg("subscription sweep")
	}
}

func (s *Scheduler) sweepUnsentMail() {
	if err := s.notifier.SweepUnsent(context.Background(), 100); err != nil {
		s.log.Error().Err(err).Msg("mail sweep")
	}
}

// mail composes, persists, and delivers one notification. Failures are logged;
// a persisted-but-undelivered row is picked up by the mail sweep.
func (s *Scheduler) mail(ctx context.Context, recipientID, kind string, data map[string]string) {
	recipient, err := s.accountRepo.GetByID(recipientID)
	if err != nil || recipient == nil {
		s.log.Error().Err(err).Str("recipient_id", recipientID).Msg("scheduler mail: recipient lookup")
		return
	}
	// Compose copies the data and fills a missing "name" from the account,
	// so the caller's map, nil included, is never written to.
	n, err := s.notifier.Compose(recipientID, kind, data)
	if err != nil {
		s.log.Error().Err(err).Str("kind", kind).Msg("scheduler mail: compose")
		return
	}
	if err := s.notifRepo.Create(n); err != nil {
		s.log.Error().Err(err).Str("kind", kind).Msg("scheduler mail: persist")
		return
	}
	if err := s.notifier.Deliver(ctx, n, recipient.Email); err != nil {
		s.log.Error().Err(err).Str("notification_id", n.ID).Msg("scheduler mail: deliver")
	}
}
