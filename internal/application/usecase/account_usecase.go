package usecase

import (
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// AccountUseCase admin account management.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
}

// NewAccountUseCase builds the use case.
func NewAccountUseCase(accountRepo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// List returns accounts, optionally filtered by role.
func (uc *AccountUseCase) List(role string, limit, offset int) ([]*dto.AccountResponse, error) {
	list, err := uc.accountRepo.List(role, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.AccountResponse{
			ID:        a.ID,
			Email:     a.Email,
			Name:      a.Name,
			Phone:     a.Phone,
			Role:      a.Role,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	return out, nil
}

// SetStatus suspends or reactivates an account. Admin accounts cannot be
// suspended through the API.
func (uc *AccountUseCase) SetStatus(id, status string) error {
	switch status {
	case entity.AccountActive, entity.AccountSuspended:
	default:
		return domain.ErrInvalidInput
	}
	a, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.Role == entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.accountRepo.UpdateStatus(id, status)
}
