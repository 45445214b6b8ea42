package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

const contractorID = "contractor-1"

type fakeWorkInvoiceRepo struct {
	repository.WorkInvoiceRepository
	invoice *entity.WorkInvoice
	lines   []*entity.WorkInvoiceLine
}

func (f *fakeWorkInvoiceRepo) Create(inv *entity.WorkInvoice) error {
	f.invoice = inv
	return nil
}

func (f *fakeWorkInvoiceRepo) CreateLine(line *entity.WorkInvoiceLine) error {
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeWorkInvoiceRepo) GetByID(string) (*entity.WorkInvoice, error) { return f.invoice, nil }

func (f *fakeWorkInvoiceRepo) Update(inv *entity.WorkInvoice) error {
	f.invoice = inv
	return nil
}

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customer *entity.Customer
}

func (f *fakeCustomerRepo) GetByID(string) (*entity.Customer, error) { return f.customer, nil }

func ownedCustomer() *entity.Customer {
	return &entity.Customer{ID: "cust-1", ContractorID: contractorID, Name: "Dana Holt"}
}

func newWorkInvoiceUC(repo *fakeWorkInvoiceRepo, customer *entity.Customer) *usecase.WorkInvoiceUseCase {
	return usecase.NewWorkInvoiceUseCase(repo, &fakeCustomerRepo{customer: customer}, nil, nil, nil)
}

func lineReq(desc, qty, price, tax string) dto.WorkInvoiceLineRequest {
	return dto.WorkInvoiceLineRequest{
		Description: desc,
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
		TaxRate:     decimal.RequireFromString(tax),
	}
}

func TestCreateWorkInvoice_ComputesTotalsServerSide(t *testing.T) {
	repo := &fakeWorkInvoiceRepo{}
	uc := newWorkInvoiceUC(repo, ownedCustomer())

	resp, err := uc.Create(contractorID, &dto.CreateWorkInvoiceRequest{
		CustomerID: "cust-1",
		Number:     "WI-TEST-1",
		Lines: []dto.WorkInvoiceLineRequest{
			lineReq("Water heater install", "1", "850.00", "0.08"),
			lineReq("Labor", "3.5", "95.00", "0"),
		},
	})
	require.NoError(t, err)

	// 850.00 + 332.50 = 1182.50 subtotal; tax only on the first line.
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("1182.50")), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.TaxTotal.Equal(decimal.RequireFromString("68.00")), "tax %s", resp.TaxTotal)
	assert.True(t, resp.GrandTotal.Equal(decimal.RequireFromString("1250.50")), "total %s", resp.GrandTotal)
	assert.Equal(t, entity.WorkInvoiceDraft, resp.Status)
	assert.Len(t, repo.lines, 2)
}

func TestCreateWorkInvoice_PercentTaxRateNormalized(t *testing.T) {
	repo := &fakeWorkInvoiceRepo{}
	uc := newWorkInvoiceUC(repo, ownedCustomer())

	// 8 means 8 percent, not a 800 percent fraction.
	resp, err := uc.Create(contractorID, &dto.CreateWorkInvoiceRequest{
		CustomerID: "cust-1",
		Lines:      []dto.WorkInvoiceLineRequest{lineReq("Service call", "1", "100.00", "8")},
	})
	require.NoError(t, err)

	assert.True(t, resp.TaxTotal.Equal(decimal.RequireFromString("8.00")), "tax %s", resp.TaxTotal)
	assert.True(t, repo.lines[0].TaxRate.Equal(decimal.RequireFromString("0.08")))
}

func TestCreateWorkInvoice_AutoNumbersWhenEmpty(t *testing.T) {
	repo := &fakeWorkInvoiceRepo{}
	uc := newWorkInvoiceUC(repo, ownedCustomer())

	resp, err := uc.Create(contractorID, &dto.CreateWorkInvoiceRequest{
		CustomerID: "cust-1",
		Lines:      []dto.WorkInvoiceLineRequest{lineReq("Service call", "1", "100.00", "0")},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^WI-\d{8}-[0-9A-F]{8}$`, resp.Number)
}

func TestCreateWorkInvoice_RejectsBadLines(t *testing.T) {
	uc := newWorkInvoiceUC(&fakeWorkInvoiceRepo{}, ownedCustomer())

	cases := []struct {
		name string
		line dto.WorkInvoiceLineRequest
	}{
		{"empty description", lineReq("", "1", "10.00", "0")},
		{"zero quantity", lineReq("Labor", "0", "10.00", "0")},
		{"negative price", lineReq("Labor", "1", "-10.00", "0")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(contractorID, &dto.CreateWorkInvoiceRequest{
				CustomerID: "cust-1",
				Lines:      []dto.WorkInvoiceLineRequest{tc.line},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateWorkInvoice_ForeignCustomerForbidden(t *testing.T) {
	other := ownedCustomer()
	other.ContractorID = "contractor-2"
	uc := newWorkInvoiceUC(&fakeWorkInvoiceRepo{}, other)

	_, err := uc.Create(contractorID, &dto.CreateWorkInvoiceRequest{
		CustomerID: "cust-1",
		Lines:      []dto.WorkInvoiceLineRequest{lineReq("Labor", "1", "10.00", "0")},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSetStatus_FollowsTransitions(t *testing.T) {
	repo := &fakeWorkInvoiceRepo{invoice: &entity.WorkInvoice{
		ID:           "wi-1",
		ContractorID: contractorID,
		Status:       entity.WorkInvoiceDraft,
	}}
	uc := newWorkInvoiceUC(repo, ownedCustomer())

	resp, err := uc.SetStatus(contractorID, "wi-1", entity.WorkInvoiceSent)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkInvoiceSent, resp.Status)

	resp, err = uc.SetStatus(contractorID, "wi-1", entity.WorkInvoicePaid)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkInvoicePaid, resp.Status)
}

func TestSetStatus_InvalidTransitionConflicts(t *testing.T) {
	repo := &fakeWorkInvoiceRepo{invoice: &entity.WorkInvoice{
		ID:           "wi-1",
		ContractorID: contractorID,
		Status:       entity.WorkInvoiceDraft,
	}}
	uc := newWorkInvoiceUC(repo, ownedCustomer())

	// draft cannot jump straight to paid
	_, err := uc.SetStatus(contractorID, "wi-1", entity.WorkInvoicePaid)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// paid is terminal
	repo.invoice.Status = entity.WorkInvoicePaid
	_, err = uc.SetStatus(contractorID, "wi-1", entity.WorkInvoiceVoid)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
