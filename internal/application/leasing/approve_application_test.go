package leasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

const (
	landlordID  = "landlord-1"
	applicantID = "tenant-1"
)

// Fakes embed the repository interface so only the methods the use case
// touches need an implementation.

type fakeAppRepo struct {
	repository.ApplicationRepository
	app     *entity.Application
	updated *entity.Application
}

func (f *fakeAppRepo) GetByID(string) (*entity.Application, error) { return f.app, nil }
func (f *fakeAppRepo) Update(app *entity.Application) error {
	f.updated = app
	return nil
}

type fakeUnitRepo struct {
	repository.UnitRepository
	unit      *entity.Unit
	newStatus string
}

func (f *fakeUnitRepo) GetByID(string) (*entity.Unit, error) { return f.unit, nil }
func (f *fakeUnitRepo) UpdateStatus(_, status string) error {
	f.newStatus = status
	return nil
}

type fakePropertyRepo struct {
	repository.PropertyRepository
	prop *entity.Property
}

func (f *fakePropertyRepo) GetByID(string) (*entity.Property, error) { return f.prop, nil }

type fakeAccountRepo struct {
	repository.AccountRepository
	account *entity.Account
}

func (f *fakeAccountRepo) GetByID(string) (*entity.Account, error) { return f.account, nil }

type fakeLeaseRepo struct {
	repository.LeaseRepository
	created *entity.Lease
}

func (f *fakeLeaseRepo) Create(lease *entity.Lease) error {
	f.created = lease
	return nil
}

type fakeInvoiceRepo struct {
	repository.RentInvoiceRepository
	created *entity.RentInvoice
}

func (f *fakeInvoiceRepo) Create(inv *entity.RentInvoice) error {
	f.created = inv
	return nil
}

type fakeNotifRepo struct {
	repository.NotificationRepository
	created *entity.Notification
}

func (f *fakeNotifRepo) Create(n *entity.Notification) error {
	f.created = n
	return nil
}

type fakeNotifier struct {
	composedKind string
	delivered    bool
	deliveredTo  string
}

func (f *fakeNotifier) Compose(recipientID, kind string, data map[string]string) (*entity.Notification, error) {
	f.composedKind = kind
	return &entity.Notification{ID: "notif-1", RecipientID: recipientID, Kind: kind}, nil
}

func (f *fakeNotifier) Deliver(_ context.Context, _ *entity.Notification, toEmail string) error {
	f.delivered = true
	f.deliveredTo = toEmail
	return nil
}

// fakeTxRunner hands the same fakes to the transactional closure.
type fakeTxRunner struct {
	appRepo     *fakeAppRepo
	leaseRepo   *fakeLeaseRepo
	unitRepo    *fakeUnitRepo
	invoiceRepo *fakeInvoiceRepo
	notifRepo   *fakeNotifRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	appRepo repository.ApplicationRepository,
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	invoiceRepo repository.RentInvoiceRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return fn(f.appRepo, f.leaseRepo, f.unitRepo, f.invoiceRepo, f.notifRepo)
}

type approveFixture struct {
	uc       *leasing.ApproveApplicationUseCase
	appRepo  *fakeAppRepo
	unitRepo *fakeUnitRepo
	lease    *fakeLeaseRepo
	invoice  *fakeInvoiceRepo
	notifs   *fakeNotifRepo
	notifier *fakeNotifier
}

func newApproveFixture(app *entity.Application, unit *entity.Unit, prop *entity.Property) *approveFixture {
	f := &approveFixture{
		appRepo:  &fakeAppRepo{app: app},
		unitRepo: &fakeUnitRepo{unit: unit},
		lease:    &fakeLeaseRepo{},
		invoice:  &fakeInvoiceRepo{},
		notifs:   &fakeNotifRepo{},
		notifier: &fakeNotifier{},
	}
	tx := &fakeTxRunner{
		appRepo:     f.appRepo,
		leaseRepo:   f.lease,
		unitRepo:    f.unitRepo,
		invoiceRepo: f.invoice,
		notifRepo:   f.notifs,
	}
	accountRepo := &fakeAccountRepo{account: &entity.Account{
		ID:    applicantID,
		Email: "tenant@example.com",
		Name:  "Terry Tenant",
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.uc = leasing.NewApproveApplicationUseCase(
		tx, f.appRepo, f.unitRepo, &fakePropertyRepo{prop: prop}, accountRepo, f.notifier, log,
	)
	return f
}

func pendingApplication(moveIn time.Time) *entity.Application {
	return &entity.Application{
		ID:          "app-1",
		UnitID:      "unit-1",
		ApplicantID: applicantID,
		MoveInDate:  moveIn,
		Status:      entity.ApplicationPending,
	}
}

func vacantUnit(rent string) *entity.Unit {
	return &entity.Unit{
		ID:         "unit-1",
		PropertyID: "prop-1",
		Label:      "2B",
		Rent:       mustDecimal(rent),
		Deposit:    mustDecimal(rent),
		Status:     entity.UnitVacant,
	}
}

func ownedProperty() *entity.Property {
	return &entity.Property{ID: "prop-1", LandlordID: landlordID, Name: "Maple Court"}
}

func mustDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestApprove_HappyPathProratesFirstInvoice(t *testing.T) {
	// March has 31 days; moving in on the 17th occupies 15 days.
	moveIn := time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)
	f := newApproveFixture(pendingApplication(moveIn), vacantUnit("1550.00"), ownedProperty())

	result, err := f.uc.Approve(context.Background(), landlordID, "app-1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, entity.ApplicationApproved, result.Application.Status)

	require.NotNil(t, f.lease.created)
	assert.Equal(t, entity.LeaseDraft, f.lease.created.Status)
	assert.Equal(t, moveIn, f.lease.created.StartDate)
	assert.Equal(t, moveIn.AddDate(0, leasing.DefaultLeaseTermMonths, 0), f.lease.created.EndDate)
	assert.Equal(t, applicantID, f.lease.created.TenantID)

	require.NotNil(t, f.invoice.created)
	assert.Equal(t, "2026-03", f.invoice.created.Period)
	assert.True(t, f.invoice.created.Amount.Equal(mustDecimal("750.00")),
		"15 of 31 days at 1550.00 should owe 750.00, got %s", f.invoice.created.Amount)
	assert.Equal(t, entity.RentInvoiceOpen, f.invoice.created.Status)

	assert.Equal(t, entity.UnitOccupied, f.unitRepo.newStatus)
	require.NotNil(t, f.notifs.created)
	assert.Equal(t, entity.NotifyApplicationApproved, f.notifier.composedKind)
	assert.True(t, f.notifier.delivered)
	assert.Equal(t, "tenant@example.com", f.notifier.deliveredTo)
}

func TestApprove_FirstOfMonthOwesFullRent(t *testing.T) {
	moveIn := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	f := newApproveFixture(pendingApplication(moveIn), vacantUnit("1800.00"), ownedProperty())

	result, err := f.uc.Approve(context.Background(), landlordID, "app-1")
	require.NoError(t, err)
	assert.True(t, result.FirstInvoice.Amount.Equal(mustDecimal("1800.00")))
}

func TestApprove_WrongLandlordForbidden(t *testing.T) {
	moveIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	f := newApproveFixture(pendingApplication(moveIn), vacantUnit("1500.00"), ownedProperty())

	_, err := f.uc.Approve(context.Background(), "someone-else", "app-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, f.lease.created)
}

func TestApprove_AlreadyDecidedConflicts(t *testing.T) {
	moveIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	app := pendingApplication(moveIn)
	app.Status = entity.ApplicationRejected
	f := newApproveFixture(app, vacantUnit("1500.00"), ownedProperty())

	_, err := f.uc.Approve(context.Background(), landlordID, "app-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestApprove_OccupiedUnitUnavailable(t *testing.T) {
	moveIn := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	unit := vacantUnit("1500.00")
	unit.Status = entity.UnitOccupied
	f := newApproveFixture(pendingApplication(moveIn), unit, ownedProperty())

	_, err := f.uc.Approve(context.Background(), landlordID, "app-1")
	assert.ErrorIs(t, err, domain.ErrUnitUnavailable)
	assert.Nil(t, f.lease.created)
	assert.False(t, f.notifier.delivered)
}
