package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// UnitRepository is the persistence port for Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	ListByProperty(propertyID string) ([]*entity.Unit, error)
	// ListVacant powers the public browse page: vacant units across all
	// properties, newest first.
	ListVacant(limit, offset int) ([]*entity.Unit, error)
	Update(unit *entity.Unit) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
