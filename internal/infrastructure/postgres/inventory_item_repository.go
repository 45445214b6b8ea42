package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implements InventoryItemRepository over PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryColumns = `id, contractor_id, sku, name, quantity, unit_cost, reorder_level, created_at, updated_at`

func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ContractorID, item.SKU, item.Name, item.Quantity, item.UnitCost,
		item.ReorderLevel, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		// (contractor_id, sku) is unique.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item")
}

func (r *InventoryItemRepo) GetByContractorAndSKU(contractorID, sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE contractor_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, contractorID, sku), "get inventory item by sku")
}

func (r *InventoryItemRepo) ListByContractor(contractorID string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory_items
		WHERE contractor_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, contractorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.ContractorID, &it.SKU, &it.Name, &it.Quantity, &it.UnitCost,
			&it.ReorderLevel, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *InventoryItemRepo) CountByContractor(contractorID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM inventory_items WHERE contractor_id = $1`, contractorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inventory items: %w", err)
	}
	return n, nil
}

func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, quantity = $3, unit_cost = $4, reorder_level = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.UnitCost, item.ReorderLevel, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.ContractorID, &it.SKU, &it.Name, &it.Quantity, &it.UnitCost,
		&it.ReorderLevel, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
