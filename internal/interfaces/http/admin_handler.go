package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

// AdminHandler platform account administration.
type AdminHandler struct {
	uc *usecase.AccountUseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(uc *usecase.AccountUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListAccounts godoc
// @Summary      List accounts
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        role    query  string  false  "Filter by role"
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/admin/accounts [get]
func (h *AdminHandler) ListAccounts(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("role"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// accountStatusRequest is the body for status changes.
type accountStatusRequest struct {
	Status string `json:"status"` // active, suspended
}

// SetAccountStatus godoc
// @Summary      Suspend or reactivate an account
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "Account ID"
// @Param        body  body  accountStatusRequest  true  "Target status"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/accounts/{id}/status [post]
func (h *AdminHandler) SetAccountStatus(c *fiber.Ctx) error {
	var in accountStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Status != entity.AccountActive && in.Status != entity.AccountSuspended {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status must be active or suspended"})
	}
	if err := h.uc.SetStatus(c.Params("id"), in.Status); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
