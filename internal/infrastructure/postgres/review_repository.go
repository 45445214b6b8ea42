package postgres

import (
	"context"
	"fmt"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implements ReviewRepository over PostgreSQL.
type ReviewRepo struct {
	q Querier
}

func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, contractor_id, customer_id, job_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.ContractorID, review.CustomerID, nullable(review.JobID),
		review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) ListByContractor(contractorID string, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, contractor_id, customer_id, job_id, rating, comment, created_at
		FROM reviews WHERE contractor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, contractorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rev entity.Review
		var jobID *string
		if err := rows.Scan(&rev.ID, &rev.ContractorID, &rev.CustomerID, &jobID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		if jobID != nil {
			rev.JobID = *jobID
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

func (r *ReviewRepo) Aggregate(contractorID string) (float64, int, error) {
	var avg float64
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT coalesce(avg(rating), 0), count(*) FROM reviews WHERE contractor_id = $1`,
		contractorID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate reviews: %w", err)
	}
	return avg, count, nil
}
