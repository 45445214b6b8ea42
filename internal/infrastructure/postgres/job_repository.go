package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implements JobRepository over PostgreSQL.
type JobRepo struct {
	q Querier
}

func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `id, contractor_id, customer_id, title, description, status, scheduled_at,
		quoted_amount, final_amount, created_at, updated_at`

func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.ContractorID, job.CustomerID, job.Title, job.Description, job.Status,
		job.ScheduledAt, job.QuotedAmount, job.FinalAmount, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepo) GetByID(id string) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var j entity.Job
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.ContractorID, &j.CustomerID, &j.Title, &j.Description, &j.Status,
		&j.ScheduledAt, &j.QuotedAmount, &j.FinalAmount, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

func (r *JobRepo) ListByContractor(contractorID, status string, limit, offset int) ([]*entity.Job, error) {
	query := `
		SELECT ` + jobColumns + ` FROM jobs
		WHERE contractor_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, contractorID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.ContractorID, &j.CustomerID, &j.Title, &j.Description, &j.Status,
			&j.ScheduledAt, &j.QuotedAmount, &j.FinalAmount, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

func (r *JobRepo) CountByContractor(contractorID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM jobs WHERE contractor_id = $1`, contractorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET title = $2, description = $3, status = $4, scheduled_at = $5,
			quoted_amount = $6, final_amount = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.Title, job.Description, job.Status, job.ScheduledAt,
		job.QuotedAmount, job.FinalAmount, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (r *JobRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
