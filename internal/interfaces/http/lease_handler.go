package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

// LeaseHandler lease lifecycle: listing, signature flow, termination.
type LeaseHandler struct {
	uc *leasing.LeaseUseCase
}

// NewLeaseHandler builds the handler.
func NewLeaseHandler(uc *leasing.LeaseUseCase) *LeaseHandler {
	return &LeaseHandler{uc: uc}
}

// List godoc
// @Summary      List leases (landlord sees theirs, tenant sees their own)
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LeaseResponse
// @Router       /api/leases [get]
func (h *LeaseHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if GetRole(c) == entity.RoleTenant {
		out, err := h.uc.ListForTenant(userID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListForLandlord(userID, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a lease
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Lease ID"
// @Success      200  {object}  dto.LeaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leases/{id} [get]
func (h *LeaseHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Agreement godoc
// @Summary      Get a presigned URL for the lease agreement PDF
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Lease ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/agreement [get]
func (h *LeaseHandler) Agreement(c *fiber.Ctx) error {
	url, err := h.uc.AgreementURL(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// SendForSignature godoc
// @Summary      Render the agreement and send it out for e-signature
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Lease ID"
// @Success      200  {object}  dto.LeaseResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/send [post]
func (h *LeaseHandler) SendForSignature(c *fiber.Ctx) error {
	out, err := h.uc.SendForSignature(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Terminate godoc
// @Summary      Terminate an active lease
// @Tags         leases
// @Security     Bearer
// @Param        id  path  string  true  "Lease ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/terminate [post]
func (h *LeaseHandler) Terminate(c *fiber.Ctx) error {
	if err := h.uc.Terminate(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
