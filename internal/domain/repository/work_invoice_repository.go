package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// WorkInvoiceRepository is the persistence port for work invoices and lines.
type WorkInvoiceRepository interface {
	Create(inv *entity.WorkInvoice) error
	CreateLine(line *entity.WorkInvoiceLine) error
	GetByID(id string) (*entity.WorkInvoice, error)
	GetLinesByInvoiceID(invoiceID string) ([]*entity.WorkInvoiceLine, error)
	ListByContractor(contractorID string, limit, offset int) ([]*entity.WorkInvoice, error)
	Update(inv *entity.WorkInvoice) error
}
