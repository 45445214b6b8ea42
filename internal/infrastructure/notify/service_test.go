package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/notify"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeNotifRepo struct {
	repository.NotificationRepository
	unsent []*entity.Notification
	marked []string
}

func (f *fakeNotifRepo) ListUnsent(int) ([]*entity.Notification, error) { return f.unsent, nil }

func (f *fakeNotifRepo) MarkSent(id string) error {
	f.marked = append(f.marked, id)
	return nil
}

type fakeAccountRepo struct {
	repository.AccountRepository
	accounts map[string]*entity.Account
}

func (f *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	return f.accounts[id], nil
}

func newService(mailer *fakeMailer, notifs *fakeNotifRepo, accounts map[string]*entity.Account) *notify.Service {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return notify.NewService(mailer, notifs, &fakeAccountRepo{accounts: accounts}, log)
}

func tenantAccounts() map[string]*entity.Account {
	return map[string]*entity.Account{
		"tenant-1": {ID: "tenant-1", Name: "Terry Tenant", Email: "tenant@example.com"},
	}
}

func TestCompose_RendersTemplateAndFormatsAmount(t *testing.T) {
	svc := newService(&fakeMailer{}, &fakeNotifRepo{}, tenantAccounts())

	n, err := svc.Compose("tenant-1", entity.NotifyRentDue, map[string]string{
		"amount":   "1550.00",
		"period":   "2026-03",
		"due_date": "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Rent due soon", n.Subject)
	assert.Contains(t, n.Body, "Hi Terry Tenant,")
	assert.Contains(t, n.Body, "$1,550.00")
	assert.Contains(t, n.Body, "2026-03")
	assert.Contains(t, n.Body, "due on 2026-03-01")
	assert.False(t, n.Sent)
	assert.NotEmpty(t, n.ID)
}

func TestCompose_UnknownRecipientGetsGenericGreeting(t *testing.T) {
	svc := newService(&fakeMailer{}, &fakeNotifRepo{}, nil)

	n, err := svc.Compose("ghost", entity.NotifyApplicationReceived, map[string]string{
		"unit": "2B",
	})
	require.NoError(t, err)
	assert.Contains(t, n.Body, "Hi there,")
}

func TestCompose_RejectionNoteIsOptional(t *testing.T) {
	svc := newService(&fakeMailer{}, &fakeNotifRepo{}, tenantAccounts())

	withNote, err := svc.Compose("tenant-1", entity.NotifyApplicationRejected, map[string]string{
		"unit": "2B",
		"note": "Income requirement not met",
	})
	require.NoError(t, err)
	assert.Contains(t, withNote.Body, "Note from the landlord: Income requirement not met")

	withoutNote, err := svc.Compose("tenant-1", entity.NotifyApplicationRejected, map[string]string{
		"unit": "2B",
	})
	require.NoError(t, err)
	assert.NotContains(t, withoutNote.Body, "Note from the landlord")
}

func TestCompose_NilDataStillRenders(t *testing.T) {
	svc := newService(&fakeMailer{}, &fakeNotifRepo{}, tenantAccounts())

	n, err := svc.Compose("tenant-1", entity.NotifyApplicationReceived, nil)
	require.NoError(t, err)
	assert.Contains(t, n.Body, "Hi Terry Tenant,")
}

func TestCompose_DoesNotMutateCallerData(t *testing.T) {
	svc := newService(&fakeMailer{}, &fakeNotifRepo{}, tenantAccounts())

	data := map[string]string{"amount": "1550.00"}
	_, err := svc.Compose("tenant-1", entity.NotifyRentDue, data)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"amount": "1550.00"}, data)
}

func TestCompose_UnknownKindFails(t *testing.T) {
	svc := newService(&fakeMailer{}, &fakeNotifRepo{}, tenantAccounts())

	_, err := svc.Compose("tenant-1", "carrier_pigeon", nil)
	assert.Error(t, err)
}

func TestDeliver_SendsAndMarksSent(t *testing.T) {
	mailer := &fakeMailer{}
	notifs := &fakeNotifRepo{}
	svc := newService(mailer, notifs, tenantAccounts())

	n := &entity.Notification{ID: "n-1", Subject: "Hello", Body: "World"}
	require.NoError(t, svc.Deliver(context.Background(), n, "tenant@example.com"))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "tenant@example.com", mailer.sent[0].to)
	assert.Equal(t, []string{"n-1"}, notifs.marked)
	assert.True(t, n.Sent)
}

func TestDeliver_FailedSendLeavesRowUnsent(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	notifs := &fakeNotifRepo{}
	svc := newService(mailer, notifs, tenantAccounts())

	n := &entity.Notification{ID: "n-1"}
	assert.Error(t, svc.Deliver(context.Background(), n, "tenant@example.com"))
	assert.Empty(t, notifs.marked)
	assert.False(t, n.Sent)
}

func TestSweepUnsent_RetriesPendingRows(t *testing.T) {
	mailer := &fakeMailer{}
	notifs := &fakeNotifRepo{unsent: []*entity.Notification{
		{ID: "n-1", RecipientID: "tenant-1", Subject: "A"},
		{ID: "n-2", RecipientID: "ghost", Subject: "B"}, // recipient gone, skipped
	}}
	svc := newService(mailer, notifs, tenantAccounts())

	require.NoError(t, svc.SweepUnsent(context.Background(), 10))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "tenant@example.com", mailer.sent[0].to)
	assert.Equal(t, []string{"n-1"}, notifs.marked)
}
