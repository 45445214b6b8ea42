package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
)

// ApplicationHandler rental applications, their decisions, and tenant screening.
type ApplicationHandler struct {
	uc          *leasing.ApplicationUseCase
	approveUC   *leasing.ApproveApplicationUseCase
	screeningUC *verification.ScreeningUseCase
}

// NewApplicationHandler builds the handler.
func NewApplicationHandler(uc *leasing.ApplicationUseCase, approveUC *leasing.ApproveApplicationUseCase, screeningUC *verification.ScreeningUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, approveUC: approveUC, screeningUC: screeningUC}
}

// Submit godoc
// @Summary      Apply for a unit
// @Tags         applications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitApplicationRequest  true  "Application data"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.UnitID == "" || in.MoveInDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unit_id and move_in_date are required"})
	}
	out, err := h.uc.Submit(c.Context(), GetUserID(c), &in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      List my applications (tenant)
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ApplicationResponse
// @Router       /api/applications/mine [get]
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListForApplicant(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListReceived godoc
// @Summary      List applications for my units (landlord)
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Success      200  {array}  dto.ApplicationResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) ListReceived(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListForLandlord(GetUserID(c), c.Query("status"), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  dto.ApplicationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Withdraw godoc
// @Summary      Withdraw my pending application
// @Tags         applications
// @Security     Bearer
// @Param        id  path  string  true  "Application ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	if err := h.uc.Withdraw(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Approve godoc
// @Summary      Approve an application
// @Description  Approves atomically: creates the lease, the prorated first invoice, and marks the unit occupied.
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  dto.ApproveApplicationResult
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/approve [post]
func (h *ApplicationHandler) Approve(c *fiber.Ctx) error {
	out, err := h.approveUC.Approve(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Reject an application
// @Tags         applications
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "Application ID"
// @Param        body  body  dto.RejectApplicationRequest  false  "Reason"
// @Success      204
// @Router       /api/applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectApplicationRequest
	_ = c.BodyParser(&in) // reason is optional
	if err := h.uc.Reject(c.Context(), GetUserID(c), c.Params("id"), &in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OrderScreening godoc
// @Summary      Order a background check for an applicant
// @Tags         screening
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      201  {object}  dto.ScreeningReportResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/screening [post]
func (h *ApplicationHandler) OrderScreening(c *fiber.Ctx) error {
	out, err := h.screeningUC.Order(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetScreening godoc
// @Summary      Get the background check for an application
// @Tags         screening
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  dto.ScreeningReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/screening [get]
func (h *ApplicationHandler) GetScreening(c *fiber.Ctx) error {
	out, err := h.screeningUC.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
