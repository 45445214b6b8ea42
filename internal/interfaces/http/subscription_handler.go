package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
)

// SubscriptionHandler contractor subscription management.
type SubscriptionHandler struct {
	uc *payments.SubscriptionUseCase
}

// NewSubscriptionHandler builds the handler.
func NewSubscriptionHandler(uc *payments.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Current godoc
// @Summary      Get my current subscription
// @Tags         subscriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription [get]
func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Subscribe godoc
// @Summary      Start or change my subscription
// @Tags         subscriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubscribeRequest  true  "Tier and payment data"
// @Success      201   {object}  dto.SubscriptionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subscription [post]
func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.SubscribeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Tier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tier is required"})
	}
	out, err := h.uc.Subscribe(c.Context(), GetUserID(c), &in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel godoc
// @Summary      Cancel my subscription
// @Tags         subscriptions
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription [delete]
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
