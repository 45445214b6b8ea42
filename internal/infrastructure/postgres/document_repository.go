package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implements DocumentRepository over PostgreSQL.
type DocumentRepo struct {
	q Querier
}

func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, owner_id, kind, file_name, storage_key, content_type, status,
		provider_ref, extracted, created_at, updated_at`

func (r *DocumentRepo) Create(doc *entity.VerificationDocument) error {
	query := `
		INSERT INTO verification_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.OwnerID, doc.Kind, doc.FileName, doc.StorageKey, doc.ContentType,
		doc.Status, nullable(doc.ProviderRef), doc.Extracted, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verification document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) GetByID(id string) (*entity.VerificationDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM verification_documents WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get document")
}

func (r *DocumentRepo) GetByProviderRef(providerRef string) (*entity.VerificationDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM verification_documents WHERE provider_ref = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, providerRef), "get document by provider ref")
}

func (r *DocumentRepo) ListByOwner(ownerID string) ([]*entity.VerificationDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM verification_documents WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.VerificationDocument
	for rows.Next() {
		var d entity.VerificationDocument
		var providerRef *string
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Kind, &d.FileName, &d.StorageKey, &d.ContentType,
			&d.Status, &providerRef, &d.Extracted, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if providerRef != nil {
			d.ProviderRef = *providerRef
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DocumentRepo) Update(doc *entity.VerificationDocument) error {
	query := `
		UPDATE verification_documents SET status = $2, provider_ref = $3, extracted = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Status, nullable(doc.ProviderRef), doc.Extracted, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update verification document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) scanOne(row pgx.Row, op string) (*entity.VerificationDocument, error) {
	var d entity.VerificationDocument
	var providerRef *string
	err := row.Scan(&d.ID, &d.OwnerID, &d.Kind, &d.FileName, &d.StorageKey, &d.ContentType,
		&d.Status, &providerRef, &d.Extracted, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if providerRef != nil {
		d.ProviderRef = *providerRef
	}
	return &d, nil
}
