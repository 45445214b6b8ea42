package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
)

// RentHandler rent invoices and checkout.
type RentHandler struct {
	uc *payments.RentPaymentUseCase
}

// NewRentHandler builds the handler.
func NewRentHandler(uc *payments.RentPaymentUseCase) *RentHandler {
	return &RentHandler{uc: uc}
}

// ListMine godoc
// @Summary      List my rent invoices (tenant)
// @Tags         rent
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RentInvoiceResponse
// @Router       /api/rent/invoices [get]
func (h *RentHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListForTenant(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListForLease godoc
// @Summary      List a lease's rent invoices
// @Tags         rent
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Lease ID"
// @Success      200  {array}  dto.RentInvoiceResponse
// @Router       /api/leases/{id}/invoices [get]
func (h *RentHandler) ListForLease(c *fiber.Ctx) error {
	out, err := h.uc.ListForLease(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Pay an open rent invoice
// @Tags         rent
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Invoice ID"
// @Param        body  body  dto.PayInvoiceRequest  true  "Payment data"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rent/invoices/{id}/pay [post]
func (h *RentHandler) Checkout(c *fiber.Ctx) error {
	var in dto.PayInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.PaymentMethodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payment_method_id is required"})
	}
	out, err := h.uc.Checkout(c.Context(), GetUserID(c), c.Params("id"), &in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
