package verification

import (
	"context"
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// LicenseRecheckAfter is how long a verified license result is trusted
// before the sweep re-checks it against the registry.
const LicenseRecheckAfter = 30 * 24 * time.Hour

// LicenseUseCase verifies contractor licenses against the state registry.
type LicenseUseCase struct {
	contractorRepo repository.ContractorRepository
	registry       LicenseRegistry
	log            *logger.Logger
}

func NewLicenseUseCase(contractorRepo repository.ContractorRepository, registry LicenseRegistry, log *logger.Logger) *LicenseUseCase {
	return &LicenseUseCase{contractorRepo: contractorRepo, registry: registry, log: log}
}

// Verify checks the contractor's license number against the registry and
// records the outcome on the profile.
func (uc *LicenseUseCase) Verify(ctx context.Context, accountID string) (string, error) {
	profile, err := uc.contractorRepo.GetByAccountID(accountID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrNotFound
	}
	if profile.LicenseNumber == "" || profile.LicenseState == "" {
		return "", domain.ErrInvalidInput
	}
	if err := uc.check(ctx, profile); err != nil {
		return "", err
	}
	return profile.LicenseStatus, nil
}

// Sweep re-checks profiles whose last verification is older than
// LicenseRecheckAfter. Called from the scheduler; individual registry
// failures are logged and skipped.
func (uc *LicenseUseCase) Sweep(ctx context.Context, now time.Time) error {
	profiles, err := uc.contractorRepo.ListLicensesCheckedBefore(now.Add(-LicenseRecheckAfter))
	if err != nil {
		return err
	}
	for _, profile := range profiles {
		if err := uc.check(ctx, profile); err != nil {
			uc.log.Error().Err(err).Str("profile", profile.ID).Msg("license re-check failed")
		}
	}
	return nil
}

func (uc *LicenseUseCase) check(ctx context.Context, profile *entity.ContractorProfile) error {
	record, err := uc.registry.Lookup(ctx, profile.LicenseState, profile.LicenseNumber)
	if err != nil {
		return err
	}

	now := time.Now()
	if !record.Found {
		profile.LicenseStatus = entity.LicenseNotFound
		profile.LicenseExpiresAt = nil
	} else {
		profile.LicenseStatus = mapRegistryStatus(record.Status)
		profile.LicenseExpiresAt = record.ExpiresAt
		// The registry may report active past the printed expiry; trust
		// the expiry date.
		if record.ExpiresAt != nil && record.ExpiresAt.Before(now) {
			profile.LicenseStatus = entity.LicenseExpired
		}
	}
	profile.LicenseCheckedAt = &now
	profile.UpdatedAt = now
	return uc.contractorRepo.Update(profile)
}

func mapRegistryStatus(s string) string {
	switch s {
	case "active", "current", "valid":
		return entity.LicenseActive
	case "expired", "lapsed":
		return entity.LicenseExpired
	case "suspended", "revoked":
		return entity.LicenseSuspended
	default:
		return entity.LicensePending
	}
}
