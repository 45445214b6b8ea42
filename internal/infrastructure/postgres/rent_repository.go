package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.RentInvoiceRepository = (*RentInvoiceRepo)(nil)

// RentInvoiceRepo implements RentInvoiceRepository over PostgreSQL (pool or tx).
type RentInvoiceRepo struct {
	q Querier
}

func NewRentInvoiceRepository(q Querier) *RentInvoiceRepo {
	return &RentInvoiceRepo{q: q}
}

const rentInvoiceColumns = `id, lease_id, period, amount, due_date, status, provider_payment_id,
		paid_at, created_at, updated_at`

func (r *RentInvoiceRepo) Create(inv *entity.RentInvoice) error {
	query := `
		INSERT INTO rent_invoices (` + rentInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.LeaseID, inv.Period, inv.Amount, inv.DueDate, inv.Status,
		nullable(inv.ProviderPaymentID), inv.PaidAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		// (lease_id, period) is unique: one invoice per lease per month.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rent invoice: %w", err)
	}
	return nil
}

func (r *RentInvoiceRepo) GetByID(id string) (*entity.RentInvoice, error) {
	query := `SELECT ` + rentInvoiceColumns + ` FROM rent_invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get rent invoice")
}

func (r *RentInvoiceRepo) GetByLeaseAndPeriod(leaseID, period string) (*entity.RentInvoice, error) {
	query := `SELECT ` + rentInvoiceColumns + ` FROM rent_invoices WHERE lease_id = $1 AND period = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, leaseID, period), "get rent invoice by period")
}

func (r *RentInvoiceRepo) GetByProviderPaymentID(providerPaymentID string) (*entity.RentInvoice, error) {
	query := `SELECT ` + rentInvoiceColumns + ` FROM rent_invoices WHERE provider_payment_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, providerPaymentID), "get rent invoice by provider id")
}

func (r *RentInvoiceRepo) ListByLease(leaseID string) ([]*entity.RentInvoice, error) {
	query := `SELECT ` + rentInvoiceColumns + ` FROM rent_invoices WHERE lease_id = $1 ORDER BY period`
	rows, err := r.q.Query(context.Background(), query, leaseID)
	if err != nil {
		return nil, fmt.Errorf("list rent invoices by lease: %w", err)
	}
	return scanRentInvoices(rows)
}

func (r *RentInvoiceRepo) ListByTenant(tenantID string) ([]*entity.RentInvoice, error) {
	query := `
		SELECT i.id, i.lease_id, i.period, i.amount, i.due_date, i.status, i.provider_payment_id,
			i.paid_at, i.created_at, i.updated_at
		FROM rent_invoices i
		JOIN leases l ON l.id = i.lease_id
		WHERE l.tenant_id = $1
		ORDER BY i.period DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list rent invoices by tenant: %w", err)
	}
	return scanRentInvoices(rows)
}

func (r *RentInvoiceRepo) ListOpenDueBefore(cutoff time.Time) ([]*entity.RentInvoice, error) {
	query := `SELECT ` + rentInvoiceColumns + ` FROM rent_invoices WHERE status = 'open' AND due_date <= $1`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list due rent invoices: %w", err)
	}
	return scanRentInvoices(rows)
}

func (r *RentInvoiceRepo) Update(inv *entity.RentInvoice) error {
	query := `
		UPDATE rent_invoices SET amount = $2, due_date = $3, status = $4, provider_payment_id = $5,
			paid_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Amount, inv.DueDate, inv.Status, nullable(inv.ProviderPaymentID),
		inv.PaidAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rent invoice: %w", err)
	}
	return nil
}

func (r *RentInvoiceRepo) scanOne(row pgx.Row, op string) (*entity.RentInvoice, error) {
	var i entity.RentInvoice
	var providerID *string
	err := row.Scan(&i.ID, &i.LeaseID, &i.Period, &i.Amount, &i.DueDate, &i.Status,
		&providerID, &i.PaidAt, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if providerID != nil {
		i.ProviderPaymentID = *providerID
	}
	return &i, nil
}

func scanRentInvoices(rows pgx.Rows) ([]*entity.RentInvoice, error) {
	defer rows.Close()
	var list []*entity.RentInvoice
	for rows.Next() {
		var i entity.RentInvoice
		var providerID *string
		if err := rows.Scan(&i.ID, &i.LeaseID, &i.Period, &i.Amount, &i.DueDate, &i.Status,
			&providerID, &i.PaidAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rent invoice: %w", err)
		}
		if providerID != nil {
			i.ProviderPaymentID = *providerID
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements PaymentRepository over PostgreSQL.
type PaymentRepo struct {
	q Querier
}

func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, rent_invoice_id, provider_payment_id, provider_status, amount, raw_payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.RentInvoiceID, p.ProviderPaymentID, p.ProviderStatus, p.Amount, p.RawPayload, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) GetByProviderPaymentID(providerPaymentID string) (*entity.Payment, error) {
	query := `
		SELECT id, rent_invoice_id, provider_payment_id, provider_status, amount, raw_payload, created_at
		FROM payments WHERE provider_payment_id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, providerPaymentID).Scan(
		&p.ID, &p.RentInvoiceID, &p.ProviderPaymentID, &p.ProviderStatus, &p.Amount, &p.RawPayload, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (r *PaymentRepo) ListByInvoice(rentInvoiceID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, rent_invoice_id, provider_payment_id, provider_status, amount, raw_payload, created_at
		FROM payments WHERE rent_invoice_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, rentInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.RentInvoiceID, &p.ProviderPaymentID, &p.ProviderStatus,
			&p.Amount, &p.RawPayload, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
