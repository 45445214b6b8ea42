package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var validTrades = map[string]bool{
	"plumbing":    true,
	"electrical":  true,
	"hvac":        true,
	"general":     true,
	"roofing":     true,
	"landscaping": true,
}

// ContractorProfileUseCase manages the contractor's business profile.
type ContractorProfileUseCase struct {
	contractorRepo repository.ContractorRepository
}

func NewContractorProfileUseCase(contractorRepo repository.ContractorRepository) *ContractorProfileUseCase {
	return &ContractorProfileUseCase{contractorRepo: contractorRepo}
}

// Upsert creates the profile on first call and updates it afterwards.
// Changing the license number or state resets the verification status to
// pending until the registry check runs again.
func (uc *ContractorProfileUseCase) Upsert(accountID string, req *dto.UpsertContractorProfileRequest) (*dto.ContractorProfileResponse, error) {
	if req.BusinessName == "" || !validTrades[req.Trade] {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	profile, err := uc.contractorRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.ContractorProfile{
			ID:            uuid.New().String(),
			AccountID:     accountID,
			BusinessName:  req.BusinessName,
			Trade:         req.Trade,
			LicenseNumber: req.LicenseNumber,
			LicenseState:  req.LicenseState,
			LicenseStatus: entity.LicensePending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if profile.LicenseNumber == "" {
			profile.LicenseStatus = entity.LicenseNotFound
		}
		if err := uc.contractorRepo.Create(profile); err != nil {
			return nil, err
		}
		return toProfileResponse(profile), nil
	}

	licenseChanged := profile.LicenseNumber != req.LicenseNumber || profile.LicenseState != req.LicenseState
	profile.BusinessName = req.BusinessName
	profile.Trade = req.Trade
	profile.LicenseNumber = req.LicenseNumber
	profile.LicenseState = req.LicenseState
	if licenseChanged {
		profile.LicenseStatus = entity.LicensePending
		profile.LicenseExpiresAt = nil
		profile.LicenseCheckedAt = nil
		if profile.LicenseNumber == "" {
			profile.LicenseStatus = entity.LicenseNotFound
		}
	}
	profile.UpdatedAt = now
	if err := uc.contractorRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Get returns the contractor's own profile.
func (uc *ContractorProfileUseCase) Get(accountID string) (*dto.ContractorProfileResponse, error) {
	profile, err := uc.contractorRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// GetPublic returns a profile by id for customers browsing contractors.
// License number stays private; only the verification status is shown.
func (uc *ContractorProfileUseCase) GetPublic(profileID string) (*dto.ContractorProfileResponse, error) {
	profile, err := uc.contractorRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProfileResponse(profile)
	resp.LicenseNumber = ""
	return resp, nil
}

func toProfileResponse(p *entity.ContractorProfile) *dto.ContractorProfileResponse {
	return &dto.ContractorProfileResponse{
		ID:               p.ID,
		BusinessName:     p.BusinessName,
		Trade:            p.Trade,
		LicenseNumber:    p.LicenseNumber,
		LicenseState:     p.LicenseState,
		LicenseStatus:    p.LicenseStatus,
		LicenseExpiresAt: p.LicenseExpiresAt,
		LicenseCheckedAt: p.LicenseCheckedAt,
		RatingAvg:        p.RatingAvg,
		RatingCount:      p.RatingCount,
	}
}
