package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.LeaseRepository = (*LeaseRepo)(nil)

// LeaseRepo implements LeaseRepository over PostgreSQL (pool or tx).
type LeaseRepo struct {
	q Querier
}

func NewLeaseRepository(q Querier) *LeaseRepo {
	return &LeaseRepo{q: q}
}

const leaseColumns = `id, unit_id, landlord_id, tenant_id, application_id, start_date, end_date,
		rent, deposit, status, document_key, created_at, updated_at`

func (r *LeaseRepo) Create(lease *entity.Lease) error {
	query := `
		INSERT INTO leases (` + leaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		lease.ID, lease.UnitID, lease.LandlordID, lease.TenantID, nullable(lease.ApplicationID),
		lease.StartDate, lease.EndDate, lease.Rent, lease.Deposit, lease.Status,
		lease.DocumentKey, lease.CreatedAt, lease.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lease: %w", err)
	}
	return nil
}

func (r *LeaseRepo) GetByID(id string) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	var l entity.Lease
	var appID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.UnitID, &l.LandlordID, &l.TenantID, &appID, &l.StartDate, &l.EndDate,
		&l.Rent, &l.Deposit, &l.Status, &l.DocumentKey, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lease: %w", err)
	}
	if appID != nil {
		l.ApplicationID = *appID
	}
	return &l, nil
}

func (r *LeaseRepo) ListByLandlord(landlordID string, limit, offset int) ([]*entity.Lease, error) {
	query := `
		SELECT ` + leaseColumns + ` FROM leases
		WHERE landlord_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, landlordID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leases by landlord: %w", err)
	}
	return scanLeases(rows)
}

func (r *LeaseRepo) ListByTenant(tenantID string) ([]*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list leases by tenant: %w", err)
	}
	return scanLeases(rows)
}

func (r *LeaseRepo) ListActiveEndingBefore(cutoff time.Time) ([]*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE status = 'active' AND end_date <= $1`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list leases ending: %w", err)
	}
	return scanLeases(rows)
}

func (r *LeaseRepo) ListActive() ([]*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE status = 'active'`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active leases: %w", err)
	}
	return scanLeases(rows)
}

func (r *LeaseRepo) Update(lease *entity.Lease) error {
	query := `
		UPDATE leases SET start_date = $2, end_date = $3, rent = $4, deposit = $5, status = $6,
			document_key = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lease.ID, lease.StartDate, lease.EndDate, lease.Rent, lease.Deposit, lease.Status,
		lease.DocumentKey, lease.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lease: %w", err)
	}
	return nil
}

func scanLeases(rows pgx.Rows) ([]*entity.Lease, error) {
	defer rows.Close()
	var list []*entity.Lease
	for rows.Next() {
		var l entity.Lease
		var appID *string
		if err := rows.Scan(&l.ID, &l.UnitID, &l.LandlordID, &l.TenantID, &appID, &l.StartDate, &l.EndDate,
			&l.Rent, &l.Deposit, &l.Status, &l.DocumentKey, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		if appID != nil {
			l.ApplicationID = *appID
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

var _ repository.LeaseSignatureRepository = (*LeaseSignatureRepo)(nil)

// LeaseSignatureRepo implements LeaseSignatureRepository over PostgreSQL.
type LeaseSignatureRepo struct {
	q Querier
}

func NewLeaseSignatureRepository(q Querier) *LeaseSignatureRepo {
	return &LeaseSignatureRepo{q: q}
}

const signatureColumns = `id, lease_id, envelope_id, status, signed_at, created_at, updated_at`

func (r *LeaseSignatureRepo) Create(sig *entity.LeaseSignature) error {
	query := `
		INSERT INTO lease_signatures (` + signatureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sig.ID, sig.LeaseID, sig.EnvelopeID, sig.Status, sig.SignedAt, sig.CreatedAt, sig.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lease signature: %w", err)
	}
	return nil
}

func (r *LeaseSignatureRepo) GetByLeaseID(leaseID string) (*entity.LeaseSignature, error) {
	query := `
		SELECT ` + signatureColumns + ` FROM lease_signatures
		WHERE lease_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, leaseID), "get signature by lease")
}

func (r *LeaseSignatureRepo) GetByEnvelopeID(envelopeID string) (*entity.LeaseSignature, error) {
	query := `SELECT ` + signatureColumns + ` FROM lease_signatures WHERE envelope_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, envelopeID), "get signature by envelope")
}

func (r *LeaseSignatureRepo) Update(sig *entity.LeaseSignature) error {
	query := `
		UPDATE lease_signatures SET status = $2, signed_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, sig.ID, sig.Status, sig.SignedAt, sig.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update lease signature: %w", err)
	}
	return nil
}

func (r *LeaseSignatureRepo) scanOne(row pgx.Row, op string) (*entity.LeaseSignature, error) {
	var s entity.LeaseSignature
	err := row.Scan(&s.ID, &s.LeaseID, &s.EnvelopeID, &s.Status, &s.SignedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
