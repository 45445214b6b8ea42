package leasing

import (
	"context"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction, passing repositories
// bound to that transaction. Guarantees atomicity for application approval.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		appRepo repository.ApplicationRepository,
		leaseRepo repository.LeaseRepository,
		unitRepo repository.UnitRepository,
		invoiceRepo repository.RentInvoiceRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}

// Notifier composes and delivers transactional notifications. Compose renders
// the subject/body for a kind; Deliver sends the mail and marks the row sent.
// Delivery happens after the surrounding transaction commits.
type Notifier interface {
	Compose(recipientID, kind string, data map[string]string) (*entity.Notification, error)
	Deliver(ctx context.Context, n *entity.Notification, toEmail string) error
}

// AgreementRenderer renders a lease agreement PDF.
type AgreementRenderer interface {
	RenderLease(ctx context.Context, lease *entity.Lease, unit *entity.Unit, property *entity.Property, tenant *entity.Account) ([]byte, error)
}

// DocumentStore persists rendered documents (S3).
type DocumentStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// SignatureService is the e-signature provider port.
type SignatureService interface {
	// CreateEnvelope sends the document for signature and returns the
	// provider's envelope reference.
	CreateEnvelope(ctx context.Context, leaseID string, document []byte, signerName, signerEmail string) (string, error)
}
