package entity

import "time"

// Notification kinds sent by the platform.
const (
	NotifyApplicationReceived = "application_received"
	NotifyApplicationApproved = "application_approved"
	NotifyApplicationRejected = "application_rejected"
	NotifyLeaseReadyToSign    = "lease_ready_to_sign"
	NotifyRentReceipt         = "rent_receipt"
	NotifyRentDue             = "rent_due"
	NotifyLeaseExpiring       = "lease_expiring"
)

// Notification is a persisted outbound message. The mail sender marks Sent
// after delivery so a crash between commit and SMTP leaves a retryable row.
type Notification struct {
	ID          string
	RecipientID string
	Kind        string
	Subject     string
	Body        string
	Sent        bool
	SentAt      *time.Time
	CreatedAt   time.Time
}
