package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implements ApplicationRepository over PostgreSQL (pool or tx).
type ApplicationRepo struct {
	q Querier
}

func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

const applicationColumns = `id, unit_id, applicant_id, monthly_income, employer, move_in_date, message,
		status, decision_note, decided_by, decided_at, created_at, updated_at`

func (r *ApplicationRepo) Create(app *entity.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		app.ID, app.UnitID, app.ApplicantID, app.MonthlyIncome, app.Employer, app.MoveInDate,
		app.Message, app.Status, app.DecisionNote, nullable(app.DecidedBy), app.DecidedAt,
		app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepo) GetByID(id string) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get application")
}

func (r *ApplicationRepo) GetPendingByUnitAndApplicant(unitID, applicantID string) (*entity.Application, error) {
	query := `
		SELECT ` + applicationColumns + ` FROM applications
		WHERE unit_id = $1 AND applicant_id = $2 AND status = 'pending'`
	return r.scanOne(r.q.QueryRow(context.Background(), query, unitID, applicantID), "get pending application")
}

func (r *ApplicationRepo) ListByUnit(unitID string) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE unit_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, unitID)
	if err != nil {
		return nil, fmt.Errorf("list applications by unit: %w", err)
	}
	return scanApplications(rows)
}

func (r *ApplicationRepo) ListByLandlord(landlordID, status string, limit, offset int) ([]*entity.Application, error) {
	query := `
		SELECT a.id, a.unit_id, a.applicant_id, a.monthly_income, a.employer, a.move_in_date, a.message,
			a.status, a.decision_note, a.decided_by, a.decided_at, a.created_at, a.updated_at
		FROM applications a
		JOIN units u ON u.id = a.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE p.landlord_id = $1 AND ($2 = '' OR a.status = $2)
		ORDER BY a.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, landlordID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list applications by landlord: %w", err)
	}
	return scanApplications(rows)
}

func (r *ApplicationRepo) ListByApplicant(applicantID string) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list applications by applicant: %w", err)
	}
	return scanApplications(rows)
}

func (r *ApplicationRepo) Update(app *entity.Application) error {
	query := `
		UPDATE applications SET status = $2, decision_note = $3, decided_by = $4, decided_at = $5,
			monthly_income = $6, employer = $7, message = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		app.ID, app.Status, app.DecisionNote, nullable(app.DecidedBy), app.DecidedAt,
		app.MonthlyIncome, app.Employer, app.Message, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}

func (r *ApplicationRepo) scanOne(row pgx.Row, op string) (*entity.Application, error) {
	var a entity.Application
	var decidedBy *string
	err := row.Scan(&a.ID, &a.UnitID, &a.ApplicantID, &a.MonthlyIncome, &a.Employer, &a.MoveInDate,
		&a.Message, &a.Status, &a.DecisionNote, &decidedBy, &a.DecidedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if decidedBy != nil {
		a.DecidedBy = *decidedBy
	}
	return &a, nil
}

func scanApplications(rows pgx.Rows) ([]*entity.Application, error) {
	defer rows.Close()
	var list []*entity.Application
	for rows.Next() {
		var a entity.Application
		var decidedBy *string
		if err := rows.Scan(&a.ID, &a.UnitID, &a.ApplicantID, &a.MonthlyIncome, &a.Employer, &a.MoveInDate,
			&a.Message, &a.Status, &a.DecisionNote, &decidedBy, &a.DecidedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		if decidedBy != nil {
			a.DecidedBy = *decidedBy
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// nullable maps empty strings to NULL for FK columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
