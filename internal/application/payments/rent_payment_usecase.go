package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// Notifier is the outbound-notification port (compose + deliver).
// Mirrors the leasing package's port so both can share one implementation.
type Notifier interface {
	Compose(recipientID, kind string, data map[string]string) (*entity.Notification, error)
	Deliver(ctx context.Context, n *entity.Notification, toEmail string) error
}

// RentPaymentUseCase runs rent checkout and provider webhook settlement.
type RentPaymentUseCase struct {
	invoiceRepo repository.RentInvoiceRepository
	paymentRepo repository.PaymentRepository
	leaseRepo   repository.LeaseRepository
	accountRepo repository.AccountRepository
	notifRepo   repository.NotificationRepository
	gateway     Gateway
	notifier    Notifier
	log         *logger.Logger
}

func NewRentPaymentUseCase(
	invoiceRepo repository.RentInvoiceRepository,
	paymentRepo repository.PaymentRepository,
	leaseRepo repository.LeaseRepository,
	accountRepo repository.AccountRepository,
	notifRepo repository.NotificationRepository,
	gateway Gateway,
	notifier Notifier,
	log *logger.Logger,
) *RentPaymentUseCase {
	return &RentPaymentUseCase{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		leaseRepo:   leaseRepo,
		accountRepo: accountRepo,
		notifRepo:   notifRepo,
		gateway:     gateway,
		notifier:    notifier,
		log:         log,
	}
}

// ListForTenant returns the tenant's rent invoices across all leases.
func (uc *RentPaymentUseCase) ListForTenant(tenantID string) ([]dto.RentInvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// ListForLease returns a lease's invoices, visible to its landlord or tenant.
func (uc *RentPaymentUseCase) ListForLease(requesterID, leaseID string) ([]dto.RentInvoiceResponse, error) {
	lease, err := uc.leaseRepo.GetByID(leaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, domain.ErrNotFound
	}
	if lease.LandlordID != requesterID && lease.TenantID != requesterID {
		return nil, domain.ErrForbidden
	}
	invoices, err := uc.invoiceRepo.ListByLease(leaseID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// Checkout charges an open (or previously failed) invoice through the
// provider. An approved synchronous answer settles immediately; anything
// pending leaves the invoice in processing until the webhook lands.
func (uc *RentPaymentUseCase) Checkout(ctx context.Context, tenantID, invoiceID string, req *dto.PayInvoiceRequest) (*dto.CheckoutResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	lease, err := uc.leaseRepo.GetByID(inv.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, domain.ErrNotFound
	}
	if lease.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	if inv.Status != entity.RentInvoiceOpen && inv.Status != entity.RentInvoiceFailed {
		return nil, domain.ErrConflict
	}

	tenant, err := uc.accountRepo.GetByID(tenantID)
	if err != nil || tenant == nil {
		return nil, domain.ErrNotFound
	}

	result, err := uc.gateway.CreateCharge(ctx, ChargeRequest{
		Amount:            inv.Amount,
		Description:       fmt.Sprintf("Rent %s", inv.Period),
		ExternalReference: inv.ID,
		PaymentMethodID:   req.PaymentMethodID,
		CardToken:         req.CardToken,
		PayerEmail:        tenant.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create rent charge: %w", err)
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:                uuid.New().String(),
		RentInvoiceID:     inv.ID,
		ProviderPaymentID: result.ProviderPaymentID,
		ProviderStatus:    result.ProviderStatus,
		Amount:            inv.Amount,
		RawPayload:        result.RawResponse,
		CreatedAt:         now,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	inv.ProviderPaymentID = result.ProviderPaymentID
	inv.Status = invoiceStatusFor(result.ProviderStatus)
	inv.UpdatedAt = now
	if inv.Status == entity.RentInvoicePaid {
		inv.PaidAt = &now
	}
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}

	if inv.Status == entity.RentInvoicePaid {
		uc.sendReceipt(ctx, lease.TenantID, inv)
	}

	return &dto.CheckoutResponse{
		InvoiceID:         inv.ID,
		ProviderPaymentID: result.ProviderPaymentID,
		ProviderStatus:    result.ProviderStatus,
		InvoiceStatus:     inv.Status,
	}, nil
}

// HandlePaymentEvent settles an invoice from a provider webhook. Duplicate
// deliveries for an already-settled invoice are acknowledged silently.
func (uc *RentPaymentUseCase) HandlePaymentEvent(ctx context.Context, providerPaymentID, providerStatus string, rawPayload json.RawMessage) error {
	inv, err := uc.invoiceRepo.GetByProviderPaymentID(providerPaymentID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}

	next := invoiceStatusFor(providerStatus)
	if inv.Status == entity.RentInvoicePaid {
		return nil // settled; re-deliveries change nothing
	}
	if next == inv.Status {
		return nil
	}

	now := time.Now()
	uc.recordAttempt(inv.ID, providerPaymentID, providerStatus, rawPayload, now)

	inv.Status = next
	inv.UpdatedAt = now
	if next == entity.RentInvoicePaid {
		inv.PaidAt = &now
	}
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return err
	}

	if next == entity.RentInvoicePaid {
		lease, err := uc.leaseRepo.GetByID(inv.LeaseID)
		if err == nil && lease != nil {
			uc.sendReceipt(ctx, lease.TenantID, inv)
		}
	}
	return nil
}

// recordAttempt writes the audit row unless this exact provider payment was
// already recorded by checkout.
func (uc *RentPaymentUseCase) recordAttempt(invoiceID, providerPaymentID, providerStatus string, rawPayload json.RawMessage, now time.Time) {
	existing, err := uc.paymentRepo.GetByProviderPaymentID(providerPaymentID)
	if err != nil {
		uc.log.Error().Err(err).Str("provider_payment_id", providerPaymentID).Msg("payment lookup failed")
		return
	}
	if existing != nil {
		return
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return
	}
	p := &entity.Payment{
		ID:                uuid.New().String(),
		RentInvoiceID:     invoiceID,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		Amount:            inv.Amount,
		RawPayload:        rawPayload,
		CreatedAt:         now,
	}
	if err := uc.paymentRepo.Create(p); err != nil {
		uc.log.Error().Err(err).Str("invoice", invoiceID).Msg("record payment attempt failed")
	}
}

func (uc *RentPaymentUseCase) sendReceipt(ctx context.Context, tenantID string, inv *entity.RentInvoice) {
	n, err := uc.notifier.Compose(tenantID, entity.NotifyRentReceipt, map[string]string{
		"period": inv.Period,
		"amount": inv.Amount.StringFixed(2),
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("compose receipt failed")
		return
	}
	if err := uc.notifRepo.Create(n); err != nil {
		uc.log.Error().Err(err).Msg("persist receipt failed")
		return
	}
	account, err := uc.accountRepo.GetByID(tenantID)
	if err != nil || account == nil {
		return
	}
	if err := uc.notifier.Deliver(ctx, n, account.Email); err != nil {
		uc.log.Error().Err(err).Msg("deliver receipt failed")
	}
}

// invoiceStatusFor maps provider payment statuses onto invoice statuses.
func invoiceStatusFor(providerStatus string) string {
	switch providerStatus {
	case ProviderApproved:
		return entity.RentInvoicePaid
	case ProviderRejected, ProviderCancelled:
		return entity.RentInvoiceFailed
	default:
		return entity.RentInvoiceProcessing
	}
}

func toInvoiceResponses(invoices []*entity.RentInvoice) []dto.RentInvoiceResponse {
	out := make([]dto.RentInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.RentInvoiceResponse{
			ID:      inv.ID,
			LeaseID: inv.LeaseID,
			Period:  inv.Period,
			Amount:  inv.Amount,
			DueDate: inv.DueDate.Format("2006-01-02"),
			Status:  inv.Status,
			PaidAt:  inv.PaidAt,
		})
	}
	return out
}
