package repository

import (
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

// ContractorRepository is the persistence port for contractor profiles.
type ContractorRepository interface {
	Create(profile *entity.ContractorProfile) error
	GetByID(id string) (*entity.ContractorProfile, error)
	GetByAccountID(accountID string) (*entity.ContractorProfile, error)
	Update(profile *entity.ContractorProfile) error
	// UpdateRating writes the recomputed review aggregate.
	UpdateRating(id string, avg float64, count int) error
	// ListLicensesCheckedBefore feeds the license re-check sweep: profiles with
	// an active license last verified before the cutoff.
	ListLicensesCheckedBefore(cutoff time.Time) ([]*entity.ContractorProfile, error)
}
