package notify

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

var (
	_ leasing.Notifier  = (*Service)(nil)
	_ payments.Notifier = (*Service)(nil)
)

// Mailer sends one plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

// kindTemplate holds the subject line and body template for one notification kind.
type kindTemplate struct {
	subject string
	body    string
}

var kindTemplates = map[string]kindTemplate{
	entity.NotifyApplicationReceived: {
		subject: "Application received",
		body: `Hi {{.name}},

We received your rental application for {{.unit}}. The landlord will review it and you will hear back soon.`,
	},
	entity.NotifyApplicationApproved: {
		subject: "Your application was approved",
		body: `Hi {{.name}},

Good news: your application for {{.unit}} was approved. Your lease starts on {{.start_date}} and the first invoice of {{.amount}} covers {{.period}}.`,
	},
	entity.NotifyApplicationRejected: {
		subject: "Update on your application",
		body: `Hi {{.name}},

Your application for {{.unit}} was not approved this time.{{if .note}}

Note from the landlord: {{.note}}{{end}}`,
	},
	entity.NotifyLeaseReadyToSign: {
		subject: "Your lease is ready to sign",
		body: `Hi {{.name}},

The lease agreement for {{.unit}} is ready. Check your inbox for the signature request and sign to activate the lease.`,
	},
	entity.NotifyRentReceipt: {
		subject: "Rent payment received",
		body: `Hi {{.name}},

We received your rent payment of {{.amount}} for {{.period}}. Thank you.`,
	},
	entity.NotifyRentDue: {
		subject: "Rent due soon",
		body: `Hi {{.name}},

A friendly reminder: your rent of {{.amount}} for {{.period}} is due on {{.due_date}}.`,
	},
	entity.NotifyLeaseExpiring: {
		subject: "Your lease is expiring soon",
		body: `Hi {{.name}},

Your lease for {{.unit}} ends on {{.end_date}}. Reach out to your landlord if you would like to renew.`,
	},
}

// Service composes notification rows and delivers them over SMTP.
// Composition and delivery are split so callers can persist the row inside a
// transaction and send the mail only after commit.
type Service struct {
	mailer      Mailer
	notifRepo   repository.NotificationRepository
	accountRepo repository.AccountRepository
	printer     *message.Printer
	log         *logger.Logger
}

func NewService(mailer Mailer, notifRepo repository.NotificationRepository, accountRepo repository.AccountRepository, log *logger.Logger) *Service {
	return &Service{
		mailer:      mailer,
		notifRepo:   notifRepo,
		accountRepo: accountRepo,
		printer:     message.NewPrinter(language.English),
		log:         log,
	}
}

// Compose renders the subject and body for a kind and returns an unsent row.
// Amounts in data under the "amount" key are formatted as currency, and a
// missing "name" is filled from the recipient's account.
func (s *Service) Compose(recipientID, kind string, data map[string]string) (*entity.Notification, error) {
	tpl, ok := kindTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("notify: unknown kind %q", kind)
	}

	rendered := make(map[string]string, len(data)+1)
	for k, v := range data {
		rendered[k] = v
	}
	if amt, ok := rendered["amount"]; ok {
		rendered["amount"] = s.formatAmount(amt)
	}
	if rendered["name"] == "" {
		rendered["name"] = s.recipientName(recipientID)
	}

	body, err := renderTemplate(kind, tpl.body, rendered)
	if err != nil {
		return nil, err
	}

	return &entity.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Kind:        kind,
		Subject:     tpl.subject,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Deliver sends the mail and marks the row sent. A failed send leaves the row
// unsent so the periodic sweep retries it.
func (s *Service) Deliver(ctx context.Context, n *entity.Notification, toEmail string) error {
	if err := s.mailer.Send(toEmail, n.Subject, n.Body); err != nil {
		return err
	}
	if err := s.notifRepo.MarkSent(n.ID); err != nil {
		return fmt.Errorf("notify: mark sent %s: %w", n.ID, err)
	}
	n.Sent = true
	return nil
}

// SweepUnsent retries delivery for rows that never made it out, oldest first.
// Per-row failures are logged and skipped so one bad address does not stall
// the rest of the batch.
func (s *Service) SweepUnsent(ctx context.Context, limit int) error {
	pending, err := s.notifRepo.ListUnsent(limit)
	if err != nil {
		return fmt.Errorf("notify: list unsent: %w", err)
	}

	for _, n := range pending {
		recipient, err := s.accountRepo.GetByID(n.RecipientID)
		if err != nil || recipient == nil {
			s.log.Error().Err(err).Str("notification_id", n.ID).Str("recipient_id", n.RecipientID).Msg("sweep: recipient lookup failed")
			continue
		}
		if err := s.Deliver(ctx, n, recipient.Email); err != nil {
			s.log.Error().Err(err).Str("notification_id", n.ID).Msg("sweep: delivery failed")
		}
	}
	return nil
}

// recipientName resolves the greeting name, falling back to a generic
// salutation when the account has none on file.
func (s *Service) recipientName(recipientID string) string {
	account, err := s.accountRepo.GetByID(recipientID)
	if err != nil || account == nil || account.Name == "" {
		return "there"
	}
	return account.Name
}

func (s *Service) formatAmount(raw string) string {
	var f float64
	if _, err := fmt.Sscanf(raw, "%f", &f); err != nil {
		return raw
	}
	return s.printer.Sprintf("$%.2f", f)
}

func renderTemplate(kind, text string, data map[string]string) (string, error) {
	t, err := template.New(kind).Parse(text)
	if err != nil {
		return "", fmt.Errorf("notify: parse template %q: %w", kind, err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("notify: render %q: %w", kind, err)
	}
	return sb.String(), nil
}
