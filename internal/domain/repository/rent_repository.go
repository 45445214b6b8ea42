package repository

import (
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

// RentInvoiceRepository is the persistence port for rent invoices.
type RentInvoiceRepository interface {
	Create(inv *entity.RentInvoice) error
	GetByID(id string) (*entity.RentInvoice, error)
	// GetByLeaseAndPeriod backs the one-invoice-per-period uniqueness check.
	GetByLeaseAndPeriod(leaseID, period string) (*entity.RentInvoice, error)
	GetByProviderPaymentID(providerPaymentID string) (*entity.RentInvoice, error)
	ListByLease(leaseID string) ([]*entity.RentInvoice, error)
	ListByTenant(tenantID string) ([]*entity.RentInvoice, error)
	// ListOpenDueBefore feeds the rent-due reminder sweep.
	ListOpenDueBefore(cutoff time.Time) ([]*entity.RentInvoice, error)
	Update(inv *entity.RentInvoice) error
}

// PaymentRepository records provider payment attempts for audit.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByProviderPaymentID(providerPaymentID string) (*entity.Payment, error)
	ListByInvoice(rentInvoiceID string) ([]*entity.Payment, error)
}
