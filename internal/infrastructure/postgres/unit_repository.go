package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implements UnitRepository over PostgreSQL (pool or tx).
type UnitRepo struct {
	q Querier
}

func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, property_id, label, bedrooms, bathrooms, square_feet, rent, deposit, status, created_at, updated_at`

func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.PropertyID, unit.Label, unit.Bedrooms, unit.Bathrooms, unit.SquareFeet,
		unit.Rent, unit.Deposit, unit.Status, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.PropertyID, &u.Label, &u.Bedrooms, &u.Bathrooms, &u.SquareFeet,
		&u.Rent, &u.Deposit, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) ListByProperty(propertyID string) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE property_id = $1 ORDER BY label`
	rows, err := r.q.Query(context.Background(), query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return scanUnits(rows)
}

func (r *UnitRepo) ListVacant(limit, offset int) ([]*entity.Unit, error) {
	query := `
		SELECT ` + unitColumns + ` FROM units
		WHERE status = 'vacant' ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vacant units: %w", err)
	}
	return scanUnits(rows)
}

func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `
		UPDATE units SET label = $2, bedrooms = $3, bathrooms = $4, square_feet = $5,
			rent = $6, deposit = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Label, unit.Bedrooms, unit.Bathrooms, unit.SquareFeet,
		unit.Rent, unit.Deposit, unit.Status, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update unit status: %w", err)
	}
	return nil
}

func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func scanUnits(rows pgx.Rows) ([]*entity.Unit, error) {
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.PropertyID, &u.Label, &u.Bedrooms, &u.Bathrooms, &u.SquareFeet,
			&u.Rent, &u.Deposit, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
