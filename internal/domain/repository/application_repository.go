package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// ApplicationRepository is the persistence port for rental applications.
type ApplicationRepository interface {
	Create(app *entity.Application) error
	GetByID(id string) (*entity.Application, error)
	// GetPendingByUnitAndApplicant enforces one pending application per
	// unit+applicant; nil when none exists.
	GetPendingByUnitAndApplicant(unitID, applicantID string) (*entity.Application, error)
	ListByUnit(unitID string) ([]*entity.Application, error)
	// ListByLandlord joins through units/properties; status filters when non-empty.
	ListByLandlord(landlordID, status string, limit, offset int) ([]*entity.Application, error)
	ListByApplicant(applicantID string) ([]*entity.Application, error)
	Update(app *entity.Application) error
}
