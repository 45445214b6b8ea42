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

// IdentityUseCase runs provider-hosted identity verification sessions.
type IdentityUseCase struct {
	idRepo      repository.IdentityVerificationRepository
	accountRepo repository.AccountRepository
	verifier    IdentityVerifier
}

func NewIdentityUseCase(idRepo repository.IdentityVerificationRepository, accountRepo repository.AccountRepository, verifier IdentityVerifier) *IdentityUseCase {
	return &IdentityUseCase{idRepo: idRepo, accountRepo: accountRepo, verifier: verifier}
}

// StartSession opens a provider session for the account. An already
// verified account, or one with a session still pending, gets a conflict.
func (uc *IdentityUseCase) StartSession(ctx context.Context, accountID string) (*dto.IdentityVerificationResponse, error) {
	latest, err := uc.idRepo.GetLatestByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if latest != nil && (latest.Status == entity.IdentityVerified || latest.Status == entity.IdentityPending) {
		return nil, domain.ErrConflict
	}

	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil || account == nil {
		return nil, domain.ErrNotFound
	}

	providerRef, sessionURL, err := uc.verifier.CreateSession(ctx, accountID, account.Name, account.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	v := &entity.IdentityVerification{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		ProviderRef: providerRef,
		Status:      entity.IdentityPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.idRepo.Create(v); err != nil {
		return nil, err
	}
	return &dto.IdentityVerificationResponse{ID: v.ID, Status: v.Status, SessionURL: sessionURL}, nil
}

// Status returns the account's latest verification state.
func (uc *IdentityUseCase) Status(accountID string) (*dto.IdentityVerificationResponse, error) {
	latest, err := uc.idRepo.GetLatestByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.IdentityVerificationResponse{
		ID:          latest.ID,
		Status:      latest.Status,
		CompletedAt: latest.CompletedAt,
	}, nil
}

// HandleProviderEvent applies the session outcome. Completed sessions
// ignore late events.
func (uc *IdentityUseCase) HandleProviderEvent(providerRef, outcome string) error {
	v, err := uc.idRepo.GetByProviderRef(providerRef)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	if v.Status != entity.IdentityPending {
		return nil
	}
	switch outcome {
	case entity.IdentityVerified, entity.IdentityFailed:
	default:
		return domain.ErrInvalidInput
	}
	now := time.Now()
	v.Status = outcome
	v.CompletedAt = &now
	v.UpdatedAt = now
	return uc.idRepo.Update(v)
}
