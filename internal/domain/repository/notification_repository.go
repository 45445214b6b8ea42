package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// NotificationRepository is the persistence port for outbound notifications.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// ListUnsent returns rows awaiting delivery, oldest first.
	ListUnsent(limit int) ([]*entity.Notification, error)
	MarkSent(id string) error
}
