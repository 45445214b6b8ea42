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

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implements SubscriptionRepository over PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionColumns = `id, contractor_id, tier, status, period_start, period_end,
		provider_subscription_id, canceled_at, created_at, updated_at`

func (r *SubscriptionRepo) Create(sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (` + subscriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.ContractorID, sub.Tier, sub.Status, sub.PeriodStart, sub.PeriodEnd,
		nullable(sub.ProviderSubscripID), sub.CanceledAt, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) GetByID(id string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get subscription")
}

func (r *SubscriptionRepo) GetCurrentByContractor(contractorID string) (*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE contractor_id = $1 AND status != 'canceled'
		ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, contractorID), "get current subscription")
}

func (r *SubscriptionRepo) GetByProviderRef(providerSubscripID string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE provider_subscription_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, providerSubscripID), "get subscription by provider ref")
}

func (r *SubscriptionRepo) ListEndingBefore(cutoff time.Time) ([]*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE period_end <= $1 AND status IN ('trialing', 'active')`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list ending subscriptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, sub)
	}
	return list, rows.Err()
}

func (r *SubscriptionRepo) Update(sub *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET tier = $2, status = $3, period_start = $4, period_end = $5,
			provider_subscription_id = $6, canceled_at = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.Tier, sub.Status, sub.PeriodStart, sub.PeriodEnd,
		nullable(sub.ProviderSubscripID), sub.CanceledAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) scanOne(row pgx.Row, op string) (*entity.Subscription, error) {
	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

func scanSubscription(row pgx.Row) (*entity.Subscription, error) {
	var s entity.Subscription
	var providerRef *string
	err := row.Scan(&s.ID, &s.ContractorID, &s.Tier, &s.Status, &s.PeriodStart, &s.PeriodEnd,
		&providerRef, &s.CanceledAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if providerRef != nil {
		s.ProviderSubscripID = *providerRef
	}
	return &s, nil
}
