package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implements PropertyRepository over PostgreSQL (pool or tx).
type PropertyRepo struct {
	q Querier
}

func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

func (r *PropertyRepo) Create(property *entity.Property) error {
	query := `
		INSERT INTO properties (id, landlord_id, name, address, city, state, zip_code, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		property.ID, property.LandlordID, property.Name, property.Address, property.City,
		property.State, property.ZipCode, property.Type, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	query := `
		SELECT id, landlord_id, name, address, city, state, zip_code, type, created_at, updated_at
		FROM properties WHERE id = $1`
	var p entity.Property
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Type, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

func (r *PropertyRepo) ListByLandlord(landlordID string, limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT id, landlord_id, name, address, city, state, zip_code, type, created_at, updated_at
		FROM properties WHERE landlord_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, landlordID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Type, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PropertyRepo) Update(property *entity.Property) error {
	query := `
		UPDATE properties SET name = $2, address = $3, city = $4, state = $5, zip_code = $6, type = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		property.ID, property.Name, property.Address, property.City, property.State,
		property.ZipCode, property.Type, property.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

func (r *PropertyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}
