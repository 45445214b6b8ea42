package leasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// LeaseUseCase handles the lease lifecycle after approval: sending the
// agreement for e-signature, reacting to signature callbacks, and
// termination.
type LeaseUseCase struct {
	leaseRepo    repository.LeaseRepository
	sigRepo      repository.LeaseSignatureRepository
	unitRepo     repository.UnitRepository
	propertyRepo repository.PropertyRepository
	accountRepo  repository.AccountRepository
	notifRepo    repository.NotificationRepository
	renderer     AgreementRenderer
	store        DocumentStore
	esign        SignatureService
	notifier     Notifier
	log          *logger.Logger
}

func NewLeaseUseCase(
	leaseRepo repository.LeaseRepository,
	sigRepo repository.LeaseSignatureRepository,
	unitRepo repository.UnitRepository,
	propertyRepo repository.PropertyRepository,
	accountRepo repository.AccountRepository,
	notifRepo repository.NotificationRepository,
	renderer AgreementRenderer,
	store DocumentStore,
	esign SignatureService,
	notifier Notifier,
	log *logger.Logger,
) *LeaseUseCase {
	return &LeaseUseCase{
		leaseRepo:    leaseRepo,
		sigRepo:      sigRepo,
		unitRepo:     unitRepo,
		propertyRepo: propertyRepo,
		accountRepo:  accountRepo,
		notifRepo:    notifRepo,
		renderer:     renderer,
		store:        store,
		esign:        esign,
		notifier:     notifier,
		log:          log,
	}
}

// ListForLandlord returns the landlord's leases.
func (uc *LeaseUseCase) ListForLandlord(landlordID string, page dto.PageRequest) ([]dto.LeaseResponse, error) {
	leases, err := uc.leaseRepo.ListByLandlord(landlordID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(leases), nil
}

// ListForTenant returns the tenant's leases.
func (uc *LeaseUseCase) ListForTenant(tenantID string) ([]dto.LeaseResponse, error) {
	leases, err := uc.leaseRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(leases), nil
}

// Get returns one lease, visible to its landlord or tenant.
func (uc *LeaseUseCase) Get(requesterID, leaseID string) (*dto.LeaseResponse, error) {
	lease, err := uc.scoped(requesterID, leaseID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(lease), nil
}

// AgreementURL returns a presigned download link for the rendered PDF.
func (uc *LeaseUseCase) AgreementURL(ctx context.Context, requesterID, leaseID string) (string, error) {
	lease, err := uc.scoped(requesterID, leaseID)
	if err != nil {
		return "", err
	}
	if lease.DocumentKey == "" {
		return "", domain.ErrNotFound
	}
	return uc.store.PresignGet(ctx, lease.DocumentKey)
}

// SendForSignature renders the agreement, stores it, opens an e-signature
// envelope for the tenant and moves the lease from draft to sent.
func (uc *LeaseUseCase) SendForSignature(ctx context.Context, landlordID, leaseID string) (*dto.LeaseResponse, error) {
	lease, err := uc.leaseRepo.GetByID(leaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, domain.ErrNotFound
	}
	if lease.LandlordID != landlordID {
		return nil, domain.ErrForbidden
	}
	if lease.Status != entity.LeaseDraft {
		return nil, domain.ErrConflict
	}

	unit, err := uc.unitRepo.GetByID(lease.UnitID)
	if err != nil || unit == nil {
		return nil, domain.ErrNotFound
	}
	prop, err := uc.propertyRepo.GetByID(unit.PropertyID)
	if err != nil || prop == nil {
		return nil, domain.ErrNotFound
	}
	tenant, err := uc.accountRepo.GetByID(lease.TenantID)
	if err != nil || tenant == nil {
		return nil, domain.ErrNotFound
	}

	pdf, err := uc.renderer.RenderLease(ctx, lease, unit, prop, tenant)
	if err != nil {
		return nil, fmt.Errorf("render lease agreement: %w", err)
	}

	key := fmt.Sprintf("leases/%s/agreement.pdf", lease.ID)
	if err := uc.store.Put(ctx, key, pdf, "application/pdf"); err != nil {
		return nil, fmt.Errorf("store lease agreement: %w", err)
	}

	envelopeID, err := uc.esign.CreateEnvelope(ctx, lease.ID, pdf, tenant.Name, tenant.Email)
	if err != nil {
		return nil, fmt.Errorf("create signature envelope: %w", err)
	}

	now := time.Now()
	sig := &entity.LeaseSignature{
		ID:         uuid.New().String(),
		LeaseID:    lease.ID,
		EnvelopeID: envelopeID,
		Status:     entity.SignatureSent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.sigRepo.Create(sig); err != nil {
		return nil, err
	}

	lease.Status = entity.LeaseSent
	lease.DocumentKey = key
	lease.UpdatedAt = now
	if err := uc.leaseRepo.Update(lease); err != nil {
		return nil, err
	}

	uc.notifyTenant(ctx, lease.TenantID, entity.NotifyLeaseReadyToSign, map[string]string{
		"unit": unit.Label + " at " + prop.Name,
	})

	return uc.toResponse(lease), nil
}

// HandleSignatureEvent advances a signature envelope from a provider
// callback. Events arriving out of order or more than once never regress
// the recorded state; signing activates the lease.
func (uc *LeaseUseCase) HandleSignatureEvent(envelopeID, event string, occurredAt time.Time) error {
	sig, err := uc.sigRepo.GetByEnvelopeID(envelopeID)
	if err != nil {
		return err
	}
	if sig == nil {
		return domain.ErrNotFound
	}
	if signatureRank(event) == 0 {
		return domain.ErrInvalidInput
	}
	if signatureRank(event) <= signatureRank(sig.Status) {
		return nil // stale or duplicate delivery
	}

	now := time.Now()
	sig.Status = event
	sig.UpdatedAt = now
	if event == entity.SignatureSigned {
		sig.SignedAt = &occurredAt
	}
	if err := uc.sigRepo.Update(sig); err != nil {
		return err
	}

	switch event {
	case entity.SignatureSigned:
		return uc.setLeaseStatus(sig.LeaseID, entity.LeaseActive)
	case entity.SignatureDeclined:
		// Back to draft so the landlord can revise and resend.
		return uc.setLeaseStatus(sig.LeaseID, entity.LeaseDraft)
	}
	return nil
}

// Terminate ends an active lease early and frees the unit.
func (uc *LeaseUseCase) Terminate(landlordID, leaseID string) error {
	lease, err := uc.leaseRepo.GetByID(leaseID)
	if err != nil {
		return err
	}
	if lease == nil {
		return domain.ErrNotFound
	}
	if lease.LandlordID != landlordID {
		return domain.ErrForbidden
	}
	if lease.Status != entity.LeaseActive {
		return domain.ErrConflict
	}
	lease.Status = entity.LeaseTerminated
	lease.UpdatedAt = time.Now()
	if err := uc.leaseRepo.Update(lease); err != nil {
		return err
	}
	return uc.unitRepo.UpdateStatus(lease.UnitID, entity.UnitVacant)
}

func (uc *LeaseUseCase) setLeaseStatus(leaseID, status string) error {
	lease, err := uc.leaseRepo.GetByID(leaseID)
	if err != nil {
		return err
	}
	if lease == nil {
		return domain.ErrNotFound
	}
	lease.Status = status
	lease.UpdatedAt = time.Now()
	return uc.leaseRepo.Update(lease)
}

func (uc *LeaseUseCase) scoped(requesterID, leaseID string) (*entity.Lease, error) {
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
	return lease, nil
}

// signatureRank orders envelope states for idempotent callback handling.
func signatureRank(status string) int {
	switch status {
	case entity.SignatureSent:
		return 1
	case entity.SignatureViewed:
		return 2
	case entity.SignatureSigned, entity.SignatureDeclined:
		return 3
	default:
		return 0
	}
}

func (uc *LeaseUseCase) notifyTenant(ctx context.Context, tenantID, kind string, data map[string]string) {
	n, err := uc.notifier.Compose(tenantID, kind, data)
	if err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Msg("compose notification failed")
		return
	}
	if err := uc.notifRepo.Create(n); err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Msg("persist notification failed")
		return
	}
	account, err := uc.accountRepo.GetByID(tenantID)
	if err != nil || account == nil {
		return
	}
	if err := uc.notifier.Deliver(ctx, n, account.Email); err != nil {
		uc.log.Error().Err(err).Str("kind", kind).Msg("deliver notification failed")
	}
}

func (uc *LeaseUseCase) toResponses(leases []*entity.Lease) []dto.LeaseResponse {
	out := make([]dto.LeaseResponse, 0, len(leases))
	for _, l := range leases {
		out = append(out, *uc.toResponse(l))
	}
	return out
}

func (uc *LeaseUseCase) toResponse(lease *entity.Lease) *dto.LeaseResponse {
	resp := &dto.LeaseResponse{
		ID:            lease.ID,
		UnitID:        lease.UnitID,
		TenantID:      lease.TenantID,
		ApplicationID: lease.ApplicationID,
		StartDate:     lease.StartDate.Format("2006-01-02"),
		EndDate:       lease.EndDate.Format("2006-01-02"),
		Rent:          lease.Rent,
		Deposit:       lease.Deposit,
		Status:        lease.Status,
		CreatedAt:     lease.CreatedAt,
	}
	if sig, err := uc.sigRepo.GetByLeaseID(lease.ID); err == nil && sig != nil {
		resp.Signature = &dto.SignatureInfo{
			EnvelopeID: sig.EnvelopeID,
			Status:     sig.Status,
			SignedAt:   sig.SignedAt,
		}
	}
	return resp
}
