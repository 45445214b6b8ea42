package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// ReviewRepository is the persistence port for contractor reviews.
type ReviewRepository interface {
	Create(review *entity.Review) error
	ListByContractor(contractorID string, limit, offset int) ([]*entity.Review, error)
	// Aggregate returns the average rating and count for a contractor.
	Aggregate(contractorID string) (avg float64, count int, err error)
}
