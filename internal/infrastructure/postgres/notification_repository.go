package postgres

import (
	"context"
	"fmt"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implements NotificationRepository over PostgreSQL (pool or tx).
type NotificationRepo struct {
	q Querier
}

func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, kind, subject, body, sent, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.RecipientID, n.Kind, n.Subject, n.Body, n.Sent, n.SentAt, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) ListUnsent(limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, recipient_id, kind, subject, body, sent, sent_at, created_at
		FROM notifications WHERE NOT sent ORDER BY created_at LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unsent notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Kind, &n.Subject, &n.Body, &n.Sent, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

func (r *NotificationRepo) MarkSent(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET sent = true, sent_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}
	return nil
}
