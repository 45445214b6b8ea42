package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// InvoiceRenderer renders a work invoice PDF.
type InvoiceRenderer interface {
	RenderWorkInvoice(ctx context.Context, inv *entity.WorkInvoice, lines []*entity.WorkInvoiceLine, customer *entity.Customer) ([]byte, error)
}

// InvoiceStore persists rendered invoice PDFs.
type InvoiceStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

var workInvoiceTransitions = map[string][]string{
	entity.WorkInvoiceDraft: {entity.WorkInvoiceSent, entity.WorkInvoiceVoid},
	entity.WorkInvoiceSent:  {entity.WorkInvoicePaid, entity.WorkInvoiceVoid},
}

// WorkInvoiceUseCase bills contractor customers: invoice creation with tax
// math, status transitions and PDF rendering.
type WorkInvoiceUseCase struct {
	invoiceRepo  repository.WorkInvoiceRepository
	customerRepo repository.CustomerRepository
	jobRepo      repository.JobRepository
	renderer     InvoiceRenderer
	store        InvoiceStore
}

func NewWorkInvoiceUseCase(
	invoiceRepo repository.WorkInvoiceRepository,
	customerRepo repository.CustomerRepository,
	jobRepo repository.JobRepository,
	renderer InvoiceRenderer,
	store InvoiceStore,
) *WorkInvoiceUseCase {
	return &WorkInvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		jobRepo:      jobRepo,
		renderer:     renderer,
		store:        store,
	}
}

// Create builds an invoice from its lines. Line subtotals and the tax total
// are computed server-side; client-sent totals are never trusted.
func (uc *WorkInvoiceUseCase) Create(contractorID string, req *dto.CreateWorkInvoiceRequest) (*dto.WorkInvoiceResponse, error) {
	if req.CustomerID == "" || len(req.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.ContractorID != contractorID {
		return nil, domain.ErrForbidden
	}

	if req.JobID != "" {
		job, err := uc.jobRepo.GetByID(req.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil || job.ContractorID != contractorID {
			return nil, domain.ErrNotFound
		}
		if job.CustomerID != req.CustomerID {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	inv := &entity.WorkInvoice{
		ID:           uuid.New().String(),
		ContractorID: contractorID,
		CustomerID:   req.CustomerID,
		JobID:        req.JobID,
		Number:       req.Number,
		Date:         now,
		Status:       entity.WorkInvoiceDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if inv.Number == "" {
		inv.Number = autoNumber(now)
	}

	lines := make([]*entity.WorkInvoiceLine, 0, len(req.Lines))
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for i := range req.Lines {
		in := &req.Lines[i]
		if in.Description == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		rate := normalizeTaxRate(in.TaxRate)
		lineSubtotal := in.Quantity.Mul(in.UnitPrice).Round(2)
		lines = append(lines, &entity.WorkInvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TaxRate:     rate,
			Subtotal:    lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
		taxTotal = taxTotal.Add(lineSubtotal.Mul(rate))
	}
	inv.Subtotal = subtotal.Round(2)
	inv.TaxTotal = taxTotal.Round(2)
	inv.GrandTotal = inv.Subtotal.Add(inv.TaxTotal)

	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := uc.invoiceRepo.CreateLine(line); err != nil {
			return nil, err
		}
	}
	return toWorkInvoiceResponse(inv, lines), nil
}

// Get returns an invoice with its lines.
func (uc *WorkInvoiceUseCase) Get(contractorID, invoiceID string) (*dto.WorkInvoiceResponse, error) {
	inv, err := uc.owned(contractorID, invoiceID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	return toWorkInvoiceResponse(inv, lines), nil
}

// List returns the contractor's invoices without lines.
func (uc *WorkInvoiceUseCase) List(contractorID string, page dto.PageRequest) ([]dto.WorkInvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByContractor(contractorID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toWorkInvoiceResponse(inv, nil))
	}
	return out, nil
}

// SetStatus advances the invoice along draft -> sent -> paid, with void
// reachable from draft or sent.
func (uc *WorkInvoiceUseCase) SetStatus(contractorID, invoiceID, status string) (*dto.WorkInvoiceResponse, error) {
	inv, err := uc.owned(contractorID, invoiceID)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range workInvoiceTransitions[inv.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrConflict
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return toWorkInvoiceResponse(inv, nil), nil
}

// PDF renders the invoice, stores it and returns a presigned link. The
// rendered key is cached on the invoice so repeat calls skip rendering.
func (uc *WorkInvoiceUseCase) PDF(ctx context.Context, contractorID, invoiceID string) (string, error) {
	inv, err := uc.owned(contractorID, invoiceID)
	if err != nil {
		return "", err
	}
	if inv.DocumentKey == "" {
		lines, err := uc.invoiceRepo.GetLinesByInvoiceID(inv.ID)
		if err != nil {
			return "", err
		}
		customer, err := uc.customerRepo.GetByID(inv.CustomerID)
		if err != nil || customer == nil {
			return "", domain.ErrNotFound
		}
		pdf, err := uc.renderer.RenderWorkInvoice(ctx, inv, lines, customer)
		if err != nil {
			return "", fmt.Errorf("render work invoice: %w", err)
		}
		key := fmt.Sprintf("work-invoices/%s/%s.pdf", contractorID, inv.Number)
		if err := uc.store.Put(ctx, key, pdf, "application/pdf"); err != nil {
			return "", fmt.Errorf("store work invoice: %w", err)
		}
		inv.DocumentKey = key
		inv.UpdatedAt = time.Now()
		if err := uc.invoiceRepo.Update(inv); err != nil {
			return "", err
		}
	}
	return uc.store.PresignGet(ctx, inv.DocumentKey)
}

func (uc *WorkInvoiceUseCase) owned(contractorID, invoiceID string) (*entity.WorkInvoice, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.ContractorID != contractorID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

// normalizeTaxRate accepts either a fraction (0.08) or a percent (8) and
// stores a fraction.
func normalizeTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(decimal.NewFromInt(100))
	}
	if rate.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return rate
}

func autoNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("WI-%s-%s", now.Format("20060102"), suffix)
}

func toWorkInvoiceResponse(inv *entity.WorkInvoice, lines []*entity.WorkInvoiceLine) *dto.WorkInvoiceResponse {
	resp := &dto.WorkInvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		JobID:      inv.JobID,
		Number:     inv.Number,
		Date:       inv.Date,
		Subtotal:   inv.Subtotal,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		Status:     inv.Status,
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, dto.WorkInvoiceLineResponse{
			ID:          line.ID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxRate:     line.TaxRate,
			Subtotal:    line.Subtotal,
		})
	}
	return resp
}
