package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
)

// WorkInvoiceHandler contractor invoices for completed work.
type WorkInvoiceHandler struct {
	uc *usecase.WorkInvoiceUseCase
}

// NewWorkInvoiceHandler builds the handler.
func NewWorkInvoiceHandler(uc *usecase.WorkInvoiceUseCase) *WorkInvoiceHandler {
	return &WorkInvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Create a work invoice
// @Tags         work-invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkInvoiceRequest  true  "Invoice data (totals computed server-side)"
// @Success      201   {object}  dto.WorkInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/work-invoices [post]
func (h *WorkInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.CustomerID == "" || len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id and at least one line are required"})
	}
	out, err := h.uc.Create(GetUserID(c), &in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List my work invoices
// @Tags         work-invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WorkInvoiceResponse
// @Router       /api/work-invoices [get]
func (h *WorkInvoiceHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a work invoice with its lines
// @Tags         work-invoices
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  dto.WorkInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-invoices/{id} [get]
func (h *WorkInvoiceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// statusRequest is the body for status transitions.
type statusRequest struct {
	Status string `json:"status"` // sent, paid, void
}

// SetStatus godoc
// @Summary      Advance an invoice's status
// @Tags         work-invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Invoice ID"
// @Param        body  body  statusRequest  true  "Target status"
// @Success      200   {object}  dto.WorkInvoiceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-invoices/{id}/status [post]
func (h *WorkInvoiceHandler) SetStatus(c *fiber.Ctx) error {
	var in statusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status is required"})
	}
	out, err := h.uc.SetStatus(GetUserID(c), c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Get a presigned URL for the invoice PDF
// @Tags         work-invoices
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-invoices/{id}/pdf [get]
func (h *WorkInvoiceHandler) PDF(c *fiber.Ctx) error {
	url, err := h.uc.PDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
