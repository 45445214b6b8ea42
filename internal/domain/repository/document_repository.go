package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// DocumentRepository is the persistence port for verification documents.
type DocumentRepository interface {
	Create(doc *entity.VerificationDocument) error
	GetByID(id string) (*entity.VerificationDocument, error)
	GetByProviderRef(providerRef string) (*entity.VerificationDocument, error)
	ListByOwner(ownerID string) ([]*entity.VerificationDocument, error)
	Update(doc *entity.VerificationDocument) error
}
