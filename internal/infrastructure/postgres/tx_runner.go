package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ leasing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction, handing out
// repositories bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, calls fn with tx-bound repositories, and commits
// or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	appRepo repository.ApplicationRepository,
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	invoiceRepo repository.RentInvoiceRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appRepo := NewApplicationRepository(tx)
	leaseRepo := NewLeaseRepository(tx)
	unitRepo := NewUnitRepository(tx)
	invoiceRepo := NewRentInvoiceRepository(tx)
	notifRepo := NewNotificationRepository(tx)

	if err := fn(appRepo, leaseRepo, unitRepo, invoiceRepo, notifRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
