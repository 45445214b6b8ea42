package repository

import (
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

// LeaseRepository is the persistence port for Lease.
type LeaseRepository interface {
	Create(lease *entity.Lease) error
	GetByID(id string) (*entity.Lease, error)
	ListByLandlord(landlordID string, limit, offset int) ([]*entity.Lease, error)
	ListByTenant(tenantID string) ([]*entity.Lease, error)
	// ListActiveEndingBefore feeds the expiry-notice sweep.
	ListActiveEndingBefore(cutoff time.Time) ([]*entity.Lease, error)
	// ListActive feeds the monthly rent-invoice generation sweep.
	ListActive() ([]*entity.Lease, error)
	Update(lease *entity.Lease) error
}

// LeaseSignatureRepository is the persistence port for e-signature envelopes.
type LeaseSignatureRepository interface {
	Create(sig *entity.LeaseSignature) error
	GetByLeaseID(leaseID string) (*entity.LeaseSignature, error)
	GetByEnvelopeID(envelopeID string) (*entity.LeaseSignature, error)
	Update(sig *entity.LeaseSignature) error
}
