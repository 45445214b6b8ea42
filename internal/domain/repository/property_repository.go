package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// PropertyRepository is the persistence port for Property.
type PropertyRepository interface {
	Create(property *entity.Property) error
	GetByID(id string) (*entity.Property, error)
	ListByLandlord(landlordID string, limit, offset int) ([]*entity.Property, error)
	Update(property *entity.Property) error
	Delete(id string) error
}
