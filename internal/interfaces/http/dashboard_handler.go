package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
)

// DashboardHandler portfolio and business overviews.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Landlord godoc
// @Summary      Landlord portfolio overview
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LandlordDashboardResponse
// @Router       /api/dashboard/landlord [get]
func (h *DashboardHandler) Landlord(c *fiber.Ctx) error {
	out, err := h.uc.LandlordOverview(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Contractor godoc
// @Summary      Contractor business overview
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ContractorDashboardResponse
// @Router       /api/dashboard/contractor [get]
func (h *DashboardHandler) Contractor(c *fiber.Ctx) error {
	out, err := h.uc.ContractorOverview(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
