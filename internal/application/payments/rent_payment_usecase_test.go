package payments_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

type fakeInvoiceRepo struct {
	repository.RentInvoiceRepository
	invoice *entity.RentInvoice
	updates int
}

func (f *fakeInvoiceRepo) GetByID(string) (*entity.RentInvoice, error) { return f.invoice, nil }
func (f *fakeInvoiceRepo) GetByProviderPaymentID(id string) (*entity.RentInvoice, error) {
	if f.invoice != nil && f.invoice.ProviderPaymentID == id {
		return f.invoice, nil
	}
	return nil, nil
}
func (f *fakeInvoiceRepo) Update(inv *entity.RentInvoice) error {
	f.invoice = inv
	f.updates++
	return nil
}

type fakePaymentRepo struct {
	repository.PaymentRepository
	created []*entity.Payment
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakePaymentRepo) GetByProviderPaymentID(id string) (*entity.Payment, error) {
	for _, p := range f.created {
		if p.ProviderPaymentID == id {
			return p, nil
		}
	}
	return nil, nil
}

type fakeLeaseRepo struct {
	repository.LeaseRepository
	lease *entity.Lease
}

func (f *fakeLeaseRepo) GetByID(string) (*entity.Lease, error) { return f.lease, nil }

type fakeAccountRepo struct {
	repository.AccountRepository
	account *entity.Account
}

func (f *fakeAccountRepo) GetByID(string) (*entity.Account, error) { return f.account, nil }

type fakeNotifRepo struct {
	repository.NotificationRepository
	created []*entity.Notification
}

func (f *fakeNotifRepo) Create(n *entity.Notification) error {
	f.created = append(f.created, n)
	return nil
}

type fakeNotifier struct {
	composed  []string
	delivered int
}

func (f *fakeNotifier) Compose(recipientID, kind string, _ map[string]string) (*entity.Notification, error) {
	f.composed = append(f.composed, kind)
	return &entity.Notification{ID: "n-" + kind, RecipientID: recipientID, Kind: kind}, nil
}

func (f *fakeNotifier) Deliver(context.Context, *entity.Notification, string) error {
	f.delivered++
	return nil
}

type fakeGateway struct {
	result *payments.ChargeResult
	err    error
	calls  int
}

func (f *fakeGateway) CreateCharge(context.Context, payments.ChargeRequest) (*payments.ChargeResult, error) {
	f.calls++
	return f.result, f.err
}

type rentFixture struct {
	uc       *payments.RentPaymentUseCase
	invoices *fakeInvoiceRepo
	payments *fakePaymentRepo
	gateway  *fakeGateway
	notifier *fakeNotifier
}

func newRentFixture(inv *entity.RentInvoice, gw *fakeGateway) *rentFixture {
	f := &rentFixture{
		invoices: &fakeInvoiceRepo{invoice: inv},
		payments: &fakePaymentRepo{},
		gateway:  gw,
		notifier: &fakeNotifier{},
	}
	leaseRepo := &fakeLeaseRepo{lease: &entity.Lease{
		ID:       "lease-1",
		TenantID: "tenant-1",
	}}
	accountRepo := &fakeAccountRepo{account: &entity.Account{
		ID:    "tenant-1",
		Email: "tenant@example.com",
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.uc = payments.NewRentPaymentUseCase(
		f.invoices, f.payments, leaseRepo, accountRepo, &fakeNotifRepo{}, f.gateway, f.notifier, log,
	)
	return f
}

func openInvoice() *entity.RentInvoice {
	return &entity.RentInvoice{
		ID:      "inv-1",
		LeaseID: "lease-1",
		Period:  "2026-03",
		Amount:  decimal.RequireFromString("1550.00"),
		DueDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:  entity.RentInvoiceOpen,
	}
}

func TestCheckout_ApprovedSettlesImmediately(t *testing.T) {
	gw := &fakeGateway{result: &payments.ChargeResult{
		ProviderPaymentID: "mp-100",
		ProviderStatus:    payments.ProviderApproved,
		RawResponse:       json.RawMessage(`{"status":"approved"}`),
	}}
	f := newRentFixture(openInvoice(), gw)

	resp, err := f.uc.Checkout(context.Background(), "tenant-1", "inv-1", &dto.PayInvoiceRequest{
		PaymentMethodID: "visa",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RentInvoicePaid, resp.InvoiceStatus)
	assert.Equal(t, "mp-100", resp.ProviderPaymentID)
	require.Len(t, f.payments.created, 1)
	require.NotNil(t, f.invoices.invoice.PaidAt)
	assert.Equal(t, []string{entity.NotifyRentReceipt}, f.notifier.composed)
}

func TestCheckout_PendingLeavesInvoiceProcessing(t *testing.T) {
	gw := &fakeGateway{result: &payments.ChargeResult{
		ProviderPaymentID: "mp-101",
		ProviderStatus:    payments.ProviderPending,
	}}
	f := newRentFixture(openInvoice(), gw)

	resp, err := f.uc.Checkout(context.Background(), "tenant-1", "inv-1", &dto.PayInvoiceRequest{
		PaymentMethodID: "visa",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RentInvoiceProcessing, resp.InvoiceStatus)
	assert.Nil(t, f.invoices.invoice.PaidAt)
	assert.Empty(t, f.notifier.composed, "no receipt until the webhook settles it")
}

func TestCheckout_WrongTenantForbidden(t *testing.T) {
	f := newRentFixture(openInvoice(), &fakeGateway{})

	_, err := f.uc.Checkout(context.Background(), "intruder", "inv-1", &dto.PayInvoiceRequest{
		PaymentMethodID: "visa",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.gateway.calls)
}

func TestCheckout_PaidInvoiceConflicts(t *testing.T) {
	inv := openInvoice()
	inv.Status = entity.RentInvoicePaid
	f := newRentFixture(inv, &fakeGateway{})

	_, err := f.uc.Checkout(context.Background(), "tenant-1", "inv-1", &dto.PayInvoiceRequest{
		PaymentMethodID: "visa",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, f.gateway.calls)
}

func TestHandlePaymentEvent_SettlesProcessingInvoice(t *testing.T) {
	inv := openInvoice()
	inv.Status = entity.RentInvoiceProcessing
	inv.ProviderPaymentID = "mp-200"
	f := newRentFixture(inv, &fakeGateway{})

	err := f.uc.HandlePaymentEvent(context.Background(), "mp-200", payments.ProviderApproved, json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.Equal(t, entity.RentInvoicePaid, f.invoices.invoice.Status)
	require.NotNil(t, f.invoices.invoice.PaidAt)
	assert.Len(t, f.payments.created, 1)
	assert.Equal(t, []string{entity.NotifyRentReceipt}, f.notifier.composed)
}

func TestHandlePaymentEvent_DuplicateDeliveryIsIdempotent(t *testing.T) {
	inv := openInvoice()
	inv.Status = entity.RentInvoiceProcessing
	inv.ProviderPaymentID = "mp-200"
	f := newRentFixture(inv, &fakeGateway{})

	require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), "mp-200", payments.ProviderApproved, nil))
	firstPaidAt := *f.invoices.invoice.PaidAt
	updatesAfterFirst := f.invoices.updates

	// The provider redelivers the same event.
	require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), "mp-200", payments.ProviderApproved, nil))

	assert.Equal(t, updatesAfterFirst, f.invoices.updates, "a settled invoice must not be rewritten")
	assert.Equal(t, firstPaidAt, *f.invoices.invoice.PaidAt)
	assert.Len(t, f.payments.created, 1, "no second audit row for the same provider payment")
	assert.Len(t, f.notifier.composed, 1, "no second receipt")
}

func TestHandlePaymentEvent_RejectedMarksFailed(t *testing.T) {
	inv := openInvoice()
	inv.Status = entity.RentInvoiceProcessing
	inv.ProviderPaymentID = "mp-300"
	f := newRentFixture(inv, &fakeGateway{})

	require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), "mp-300", payments.ProviderRejected, nil))

	assert.Equal(t, entity.RentInvoiceFailed, f.invoices.invoice.Status)
	assert.Nil(t, f.invoices.invoice.PaidAt)
	assert.Empty(t, f.notifier.composed)
}

func TestHandlePaymentEvent_UnknownPaymentNotFound(t *testing.T) {
	f := newRentFixture(openInvoice(), &fakeGateway{})

	err := f.uc.HandlePaymentEvent(context.Background(), "mp-unknown", payments.ProviderApproved, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
