package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
)

// InventoryHandler contractor stock items.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Add a stock item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Item data"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.SKU == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku and name are required"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List my stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// adjustRequest is the body for quantity adjustments.
type adjustRequest struct {
	Delta int `json:"delta"`
}

// Adjust godoc
// @Summary      Adjust an item's quantity
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Item ID"
// @Param        body  body  adjustRequest  true  "Signed quantity change"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in adjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta must be non-zero"})
	}
	out, err := h.uc.Adjust(GetUserID(c), c.Params("id"), in.Delta)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remove a stock item
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "Item ID"
// @Success      204
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
