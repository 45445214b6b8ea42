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

var _ repository.WorkInvoiceRepository = (*WorkInvoiceRepo)(nil)

// WorkInvoiceRepo implements WorkInvoiceRepository over PostgreSQL.
type WorkInvoiceRepo struct {
	q Querier
}

func NewWorkInvoiceRepository(q Querier) *WorkInvoiceRepo {
	return &WorkInvoiceRepo{q: q}
}

const workInvoiceColumns = `id, contractor_id, customer_id, job_id, number, date, subtotal,
		tax_total, grand_total, status, document_key, created_at, updated_at`

func (r *WorkInvoiceRepo) Create(inv *entity.WorkInvoice) error {
	query := `
		INSERT INTO work_invoices (` + workInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ContractorID, inv.CustomerID, nullable(inv.JobID), inv.Number, inv.Date,
		inv.Subtotal, inv.TaxTotal, inv.GrandTotal, inv.Status, inv.DocumentKey,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		// (contractor_id, number) is unique.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work invoice: %w", err)
	}
	return nil
}

func (r *WorkInvoiceRepo) CreateLine(line *entity.WorkInvoiceLine) error {
	query := `
		INSERT INTO work_invoice_lines (id, invoice_id, description, quantity, unit_price, tax_rate, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.Description, line.Quantity, line.UnitPrice, line.TaxRate, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert work invoice line: %w", err)
	}
	return nil
}

func (r *WorkInvoiceRepo) GetByID(id string) (*entity.WorkInvoice, error) {
	query := `SELECT ` + workInvoiceColumns + ` FROM work_invoices WHERE id = $1`
	var i entity.WorkInvoice
	var jobID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ContractorID, &i.CustomerID, &jobID, &i.Number, &i.Date,
		&i.Subtotal, &i.TaxTotal, &i.GrandTotal, &i.Status, &i.DocumentKey, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work invoice: %w", err)
	}
	if jobID != nil {
		i.JobID = *jobID
	}
	return &i, nil
}

func (r *WorkInvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.WorkInvoiceLine, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, tax_rate, subtotal
		FROM work_invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list work invoice lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkInvoiceLine
	for rows.Next() {
		var l entity.WorkInvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.Description, &l.Quantity, &l.UnitPrice, &l.TaxRate, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan work invoice line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *WorkInvoiceRepo) ListByContractor(contractorID string, limit, offset int) ([]*entity.WorkInvoice, error) {
	query := `
		SELECT ` + workInvoiceColumns + ` FROM work_invoices
		WHERE contractor_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, contractorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkInvoice
	for rows.Next() {
		var i entity.WorkInvoice
		var jobID *string
		if err := rows.Scan(&i.ID, &i.ContractorID, &i.CustomerID, &jobID, &i.Number, &i.Date,
			&i.Subtotal, &i.TaxTotal, &i.GrandTotal, &i.Status, &i.DocumentKey, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work invoice: %w", err)
		}
		if jobID != nil {
			i.JobID = *jobID
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *WorkInvoiceRepo) Update(inv *entity.WorkInvoice) error {
	query := `
		UPDATE work_invoices SET status = $2, document_key = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, inv.ID, inv.Status, inv.DocumentKey, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update work invoice: %w", err)
	}
	return nil
}
