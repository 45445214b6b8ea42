package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// JobRepository is the persistence port for contractor jobs.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	ListByContractor(contractorID, status string, limit, offset int) ([]*entity.Job, error)
	// CountByContractor backs the tier quantity limit at create time.
	CountByContractor(contractorID string) (int, error)
	Update(job *entity.Job) error
	Delete(id string) error
}
