package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// AccountRepository is the persistence port for Account (DIP).
// Implementations live in infrastructure.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	FindByEmail(email string) (*entity.Account, error)
	List(role string, limit, offset int) ([]*entity.Account, error)
	Update(account *entity.Account) error
	UpdateStatus(id, status string) error
}
